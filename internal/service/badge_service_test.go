package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/testutil"
	"badge_studio_backend/internal/util"

	"gorm.io/gorm"
)

type stubGenerator struct {
	content *GeneratedContent
	err     error
	calls   int
}

func (g *stubGenerator) Generate(ctx context.Context, in GenerateInput) (*GeneratedContent, error) {
	g.calls++
	return g.content, g.err
}

func newTestBadgeService(t *testing.T, gen ContentGenerator, storage *StorageService) (*BadgeService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewBadgeService(gen, repository.NewBadgeRepository(db), storage), db
}

func validRequest() GenerateRequest {
	return GenerateRequest{EmployeeName: "Priya", Learning: "Kubernetes", Difficulty: "Medium"}
}

func TestGeneratePersistsOnSuccess(t *testing.T) {
	gen := &stubGenerator{content: &GeneratedContent{BadgeText: "K8s Captain", LinkedinPost: "Shipped it."}}
	svc, db := newTestBadgeService(t, gen, nil)
	user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

	result, err := svc.Generate(context.Background(), user, validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(result.BadgeURL, util.SVGDataURIPrefix) {
		t.Errorf("badge url = %q", result.BadgeURL)
	}
	if result.LinkedinPost != "Shipped it." {
		t.Errorf("post = %q", result.LinkedinPost)
	}

	var rows []model.BadgeGeneration
	db.Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("generation rows = %d, want 1", len(rows))
	}
	if rows[0].BadgeText != "K8s Captain" || rows[0].Difficulty != model.DifficultyMedium || rows[0].UserName != "Priya" {
		t.Errorf("row = %+v", rows[0])
	}

	var reloaded model.User
	db.First(&reloaded, user.ID)
	if reloaded.BadgesGenerated != 1 {
		t.Errorf("badges generated = %d, want 1", reloaded.BadgesGenerated)
	}
}

func TestGenerateFailureDoesNotPersist(t *testing.T) {
	for _, genErr := range []error{util.ErrParse, util.ErrUpstream, util.ErrAIKeyMissing} {
		t.Run(genErr.Error(), func(t *testing.T) {
			gen := &stubGenerator{err: genErr}
			svc, db := newTestBadgeService(t, gen, nil)
			user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

			if _, err := svc.Generate(context.Background(), user, validRequest()); !errors.Is(err, genErr) {
				t.Fatalf("err = %v, want %v", err, genErr)
			}

			var count int64
			db.Model(&model.BadgeGeneration{}).Count(&count)
			if count != 0 {
				t.Errorf("generation rows = %d, want 0", count)
			}
		})
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
	}{
		{"blank name", GenerateRequest{EmployeeName: " ", Learning: "Go", Difficulty: "Easy"}},
		{"blank learning", GenerateRequest{EmployeeName: "A", Learning: "", Difficulty: "Easy"}},
		{"blank difficulty", GenerateRequest{EmployeeName: "A", Learning: "Go", Difficulty: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{content: &GeneratedContent{BadgeText: "b", LinkedinPost: "p"}}
			svc, db := newTestBadgeService(t, gen, nil)
			user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

			if _, err := svc.Generate(context.Background(), user, tt.req); !errors.Is(err, util.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
			if gen.calls != 0 {
				t.Error("generator called for invalid input")
			}
		})
	}
}

func TestGenerateUnknownDifficultyFallsBack(t *testing.T) {
	for _, difficulty := range []string{"easy", "Beginner", "HARD"} {
		t.Run(difficulty, func(t *testing.T) {
			gen := &stubGenerator{content: &GeneratedContent{BadgeText: "b", LinkedinPost: "p"}}
			svc, db := newTestBadgeService(t, gen, nil)
			user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

			result, err := svc.Generate(context.Background(), user, GenerateRequest{EmployeeName: "A", Learning: "Go", Difficulty: difficulty})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if gen.calls != 1 {
				t.Errorf("generator calls = %d, want 1", gen.calls)
			}
			if result.BadgeURL != BadgeDataURI(RenderBadgeSVG("A", "b", "Easy")) {
				t.Error("unknown difficulty should render the Easy badge")
			}

			svg := RenderBadgeSVG("A", "b", difficulty)
			if !strings.Contains(svg, "#FF416C") || !strings.Contains(svg, ">★<") {
				t.Errorf("svg does not use the first tier palette:\n%s", svg)
			}

			var row model.BadgeGeneration
			if err := db.First(&row).Error; err != nil {
				t.Fatalf("load row: %v", err)
			}
			if string(row.Difficulty) != difficulty {
				t.Errorf("stored difficulty = %q, want %q", row.Difficulty, difficulty)
			}
		})
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := map[string]string{"Easy": "Easy", "Hard": "Hard", "easy": "other", "Beginner": "other"}
	for in, want := range tests {
		if got := difficultyLabel(in); got != want {
			t.Errorf("difficultyLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateReturnsContentWhenPersistenceFails(t *testing.T) {
	gen := &stubGenerator{content: &GeneratedContent{BadgeText: "b", LinkedinPost: "p"}}
	svc, db := newTestBadgeService(t, gen, nil)
	user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

	if err := db.Migrator().DropTable(&model.BadgeGeneration{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	result, err := svc.Generate(context.Background(), user, validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.LinkedinPost != "p" || result.BadgeURL == "" {
		t.Errorf("result = %+v", result)
	}
}

func TestGenerateArchivesBadge(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})
	if err != nil {
		t.Fatalf("NewStorageService: %v", err)
	}

	gen := &stubGenerator{content: &GeneratedContent{BadgeText: "b", LinkedinPost: "p"}}
	svc, db := newTestBadgeService(t, gen, storage)
	svc.Now = func() time.Time { return time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC) }
	user := testutil.CreateUser(t, db, "Priya", model.RoleUser)

	if _, err := svc.Generate(context.Background(), user, validRequest()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var row model.BadgeGeneration
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if !strings.HasPrefix(row.BadgeRef, "/uploads/badges/2025/03/") || !strings.HasSuffix(row.BadgeRef, ".svg") {
		t.Fatalf("badge ref = %q", row.BadgeRef)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(row.BadgeRef, "/uploads/"))))
	if err != nil {
		t.Fatalf("archived file: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Error("archived file is not the rendered svg")
	}
}
