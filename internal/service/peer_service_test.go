package service

import (
	"errors"
	"testing"

	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/testutil"
	"badge_studio_backend/internal/util"
)

func TestBookmarks(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewPeerService(repository.NewUserRepository(db), repository.NewProfileRepository(db), repository.NewBookmarkRepository(db))

	me := testutil.CreateUser(t, db, "Me", model.RoleUser)
	alice := testutil.CreateUser(t, db, "Alice", model.RoleUser)
	bob := testutil.CreateUser(t, db, "Bob", model.RoleUser)
	addProfile(t, db, alice, "Engineering", "Go")

	if err := svc.Bookmark(me.ID, me.ID); !errors.Is(err, util.ErrSelfBookmark) {
		t.Errorf("self: err = %v", err)
	}
	if err := svc.Bookmark(me.ID, 9999); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("unknown: err = %v", err)
	}
	if err := svc.Bookmark(me.ID, alice.ID); err != nil {
		t.Fatalf("bookmark: %v", err)
	}
	if err := svc.Bookmark(me.ID, alice.ID); !errors.Is(err, util.ErrBookmarkExists) {
		t.Errorf("duplicate: err = %v", err)
	}

	peers, err := svc.ListPeers(me.ID)
	if err != nil {
		t.Fatalf("ListPeers: %v", err)
	}
	if len(peers) != 2 {
		t.Fatalf("peers = %+v", peers)
	}
	for _, p := range peers {
		if p.ID == me.ID {
			t.Error("caller listed among peers")
		}
		if p.ID == alice.ID && (!p.Bookmarked || p.Department != "Engineering" || len(p.Skills) != 1) {
			t.Errorf("alice = %+v", p)
		}
		if p.ID == bob.ID && p.Bookmarked {
			t.Errorf("bob should not be bookmarked")
		}
	}

	marks, err := svc.ListBookmarks(me.ID)
	if err != nil || len(marks) != 1 || marks[0].ID != alice.ID {
		t.Fatalf("bookmarks = %+v, err = %v", marks, err)
	}

	if err := svc.Unbookmark(me.ID, alice.ID); err != nil {
		t.Fatalf("unbookmark: %v", err)
	}
	if err := svc.Unbookmark(me.ID, alice.ID); !errors.Is(err, util.ErrBookmarkNotFound) {
		t.Errorf("second unbookmark: err = %v", err)
	}
	if err := svc.Bookmark(me.ID, alice.ID); err != nil {
		t.Errorf("bookmark again after removal: %v", err)
	}
}
