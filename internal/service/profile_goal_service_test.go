package service

import (
	"errors"
	"testing"

	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/testutil"
	"badge_studio_backend/internal/util"
)

func TestProfileLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))
	user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

	if _, err := svc.Get(user.ID); !errors.Is(err, util.ErrProfileNotFound) {
		t.Errorf("get before create: err = %v", err)
	}
	if _, err := svc.Update(user.ID, ProfileRequest{Department: "Eng"}); !errors.Is(err, util.ErrProfileNotFound) {
		t.Errorf("update before create: err = %v", err)
	}

	created, err := svc.Create(user.ID, ProfileRequest{Department: " Engineering ", Skills: []string{"Go", " ", "SQL "}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Department != "Engineering" {
		t.Errorf("department = %q", created.Department)
	}
	if skills := created.SkillList(); len(skills) != 2 || skills[1] != "SQL" {
		t.Errorf("skills = %v", skills)
	}

	if _, err := svc.Create(user.ID, ProfileRequest{}); !errors.Is(err, util.ErrProfileExists) {
		t.Errorf("second create: err = %v", err)
	}

	if _, err := svc.Update(user.ID, ProfileRequest{Department: "Design", Interests: []string{"UX"}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Department != "Design" || len(got.InterestList()) != 1 || len(got.SkillList()) != 0 {
		t.Errorf("profile after update = %+v", got)
	}
}

func TestGoalOwnershipAndStatus(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGoalService(repository.NewGoalRepository(db))
	owner := testutil.CreateUser(t, db, "Owner", model.RoleUser)
	other := testutil.CreateUser(t, db, "Other", model.RoleUser)

	goal, err := svc.Create(owner.ID, CreateGoalRequest{Title: "Learn Go", TargetHours: 20})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if goal.Status != model.GoalActive {
		t.Errorf("status = %s, want active", goal.Status)
	}

	if _, err := svc.Get(other.ID, goal.ID); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("foreign get: err = %v", err)
	}
	completed := "completed"
	if _, err := svc.Update(other.ID, goal.ID, UpdateGoalRequest{Status: &completed}); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("foreign update: err = %v", err)
	}

	bogus := "archived"
	if _, err := svc.Update(owner.ID, goal.ID, UpdateGoalRequest{Status: &bogus}); !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("bad status: err = %v", err)
	}

	updated, err := svc.Update(owner.ID, goal.ID, UpdateGoalRequest{Status: &completed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != model.GoalCompleted || updated.Title != "Learn Go" {
		t.Errorf("updated = %+v", updated)
	}

	active, _ := svc.List(owner.ID, "active")
	done, _ := svc.List(owner.ID, "completed")
	if len(active) != 0 || len(done) != 1 {
		t.Errorf("active = %d, completed = %d", len(active), len(done))
	}
	if _, err := svc.List(owner.ID, "nope"); !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("bad filter: err = %v", err)
	}
}
