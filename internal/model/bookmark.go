package model

type Bookmark struct {
	BaseModel
	UserID           uint `gorm:"uniqueIndex:idx_bookmark_pair;not null" json:"user_id"`
	BookmarkedUserID uint `gorm:"uniqueIndex:idx_bookmark_pair;not null" json:"bookmarked_user_id"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
