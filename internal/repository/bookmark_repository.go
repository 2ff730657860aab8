package repository

import (
	"badge_studio_backend/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

func (r *BookmarkRepository) Create(bookmark *model.Bookmark) error {
	return r.DB.Create(bookmark).Error
}

func (r *BookmarkRepository) Exists(userID, bookmarkedUserID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Bookmark{}).
		Where("user_id = ? AND bookmarked_user_id = ?", userID, bookmarkedUserID).
		Count(&count).Error
	return count > 0, err
}

// Delete 物理删除，保证唯一索引上的同一对可再次收藏
func (r *BookmarkRepository) Delete(userID, bookmarkedUserID uint) (int64, error) {
	res := r.DB.Unscoped().
		Where("user_id = ? AND bookmarked_user_id = ?", userID, bookmarkedUserID).
		Delete(&model.Bookmark{})
	return res.RowsAffected, res.Error
}

// BookmarkedUserIDs 用户收藏的全部用户ID，按收藏时间倒序
func (r *BookmarkRepository) BookmarkedUserIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Pluck("bookmarked_user_id", &ids).Error
	return ids, err
}
