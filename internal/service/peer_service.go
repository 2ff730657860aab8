package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// Peer 同事列表项
type Peer struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Department       string   `json:"department"`
	JobTitle         string   `json:"job_title"`
	Skills           []string `json:"skills"`
	Interests        []string `json:"interests"`
	BadgesGenerated  int      `json:"badges_generated"`
	MilestonesLogged int      `json:"milestones_logged"`
	Bookmarked       bool     `json:"bookmarked"`
}

type PeerService struct {
	UserRepo     *repository.UserRepository
	ProfileRepo  *repository.ProfileRepository
	BookmarkRepo *repository.BookmarkRepository
}

func NewPeerService(
	userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository,
	bookmarkRepo *repository.BookmarkRepository,
) *PeerService {
	return &PeerService{
		UserRepo:     userRepo,
		ProfileRepo:  profileRepo,
		BookmarkRepo: bookmarkRepo,
	}
}

func (s *PeerService) toPeers(users []model.User, bookmarked map[uint]bool) ([]Peer, error) {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	profiles, err := s.ProfileRepo.FindByUserIDs(ids)
	if err != nil {
		return nil, err
	}

	peers := make([]Peer, 0, len(users))
	for _, u := range users {
		peer := Peer{
			ID:               u.ID,
			Name:             u.Name,
			Skills:           []string{},
			Interests:        []string{},
			BadgesGenerated:  u.BadgesGenerated,
			MilestonesLogged: u.MilestonesLogged,
			Bookmarked:       bookmarked[u.ID],
		}
		if p, ok := profiles[u.ID]; ok {
			peer.Department = p.Department
			peer.JobTitle = p.JobTitle
			if skills := p.SkillList(); skills != nil {
				peer.Skills = skills
			}
			if interests := p.InterestList(); interests != nil {
				peer.Interests = interests
			}
		}
		peers = append(peers, peer)
	}
	return peers, nil
}

func (s *PeerService) bookmarkedSet(userID uint) (map[uint]bool, []uint, error) {
	ids, err := s.BookmarkRepo.BookmarkedUserIDs(userID)
	if err != nil {
		return nil, nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, ids, nil
}

// ListPeers 除自己以外的所有用户
func (s *PeerService) ListPeers(userID uint) ([]Peer, error) {
	users, err := s.UserRepo.FindOthers(userID)
	if err != nil {
		return nil, err
	}
	set, _, err := s.bookmarkedSet(userID)
	if err != nil {
		return nil, err
	}
	return s.toPeers(users, set)
}

func (s *PeerService) Bookmark(userID, peerID uint) error {
	if userID == peerID {
		return util.ErrSelfBookmark
	}
	if _, err := s.UserRepo.FindByID(peerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	exists, err := s.BookmarkRepo.Exists(userID, peerID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrBookmarkExists
	}

	return s.BookmarkRepo.Create(&model.Bookmark{UserID: userID, BookmarkedUserID: peerID})
}

func (s *PeerService) Unbookmark(userID, peerID uint) error {
	affected, err := s.BookmarkRepo.Delete(userID, peerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrBookmarkNotFound
	}
	return nil
}

// ListBookmarks 按收藏时间倒序
func (s *PeerService) ListBookmarks(userID uint) ([]Peer, error) {
	set, ids, err := s.bookmarkedSet(userID)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.UserRepo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return s.toPeers(users, set)
}
