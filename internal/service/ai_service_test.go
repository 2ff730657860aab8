package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/util"
)

func TestParseGeneratedContent(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		badge string
		post  string
	}{
		{
			name:  "well formed",
			text:  "BADGE: Priya conquered Go concurrency!\nLINKEDIN_POST: So proud of this week.",
			badge: "Priya conquered Go concurrency!",
			post:  "So proud of this week.",
		},
		{
			name:  "multi-line post",
			text:  "BADGE: Go Hero\nLINKEDIN_POST: Line one.\n\nLine two.\n#LearningJourney",
			badge: "Go Hero",
			post:  "Line one.\n\nLine two.\n#LearningJourney",
		},
		{
			name:  "post before badge",
			text:  "LINKEDIN_POST: A post.\nBADGE: A badge",
			badge: "A badge",
			post:  "A post.",
		},
		{
			name:  "markers not at line start",
			text:  "Sure! BADGE: Inline badge LINKEDIN_POST: Inline post",
			badge: "Inline badge",
			post:  "Inline post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeneratedContent(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.BadgeText != tt.badge {
				t.Errorf("badge = %q, want %q", got.BadgeText, tt.badge)
			}
			if got.LinkedinPost != tt.post {
				t.Errorf("post = %q, want %q", got.LinkedinPost, tt.post)
			}
		})
	}
}

func TestParseGeneratedContentRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no markers", "Here is a nice badge and a post."},
		{"badge only", "BADGE: Only a badge"},
		{"post only", "LINKEDIN_POST: Only a post"},
		{"empty badge", "BADGE:\nLINKEDIN_POST: A post"},
		{"empty post", "BADGE: A badge\nLINKEDIN_POST:   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGeneratedContent(tt.text)
			if !errors.Is(err, util.ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]string{"text": text}},
				},
			},
		},
	})
	return string(b)
}

func newTestAIService(url string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL:        url,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	})
}

func TestAIServiceGenerate(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}

		body, _ := io.ReadAll(r.Body)
		var req geminiRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body: %v", err)
		} else if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiReply("BADGE: Priya, Go Champion\nLINKEDIN_POST: Big week at Branding Pioneers."))
	}))
	defer srv.Close()

	svc := newTestAIService(srv.URL)
	got, err := svc.Generate(context.Background(), GenerateInput{
		EmployeeName: "Priya",
		Learning:     "Go concurrency",
		Difficulty:   "Hard",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.BadgeText != "Priya, Go Champion" {
		t.Errorf("badge = %q", got.BadgeText)
	}
	if got.LinkedinPost != "Big week at Branding Pioneers." {
		t.Errorf("post = %q", got.LinkedinPost)
	}

	for _, want := range []string{"Employee Name: Priya", "Learning: Go concurrency", "Difficulty: Hard", "BADGE: <badge text here>"} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAIServiceUpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, util.ErrUpstream},
		{"rate limited", http.StatusTooManyRequests, `{}`, util.ErrUpstream},
		{"malformed json", http.StatusOK, `{"candidates": [`, util.ErrUpstream},
		{"no candidates", http.StatusOK, `{"candidates": []}`, util.ErrUpstream},
		{"no parts", http.StatusOK, `{"candidates": [{"content": {"parts": []}}]}`, util.ErrUpstream},
		{"reply without markers", http.StatusOK, geminiReply("I cannot help with that."), util.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAIService(srv.URL).Generate(context.Background(), GenerateInput{
				EmployeeName: "Priya", Learning: "Go", Difficulty: "Easy",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAIServiceUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAIService(url).Generate(context.Background(), GenerateInput{
		EmployeeName: "Priya", Learning: "Go", Difficulty: "Easy",
	})
	if !errors.Is(err, util.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Error("error message leaks the API key")
	}
}

func TestAIServiceMissingKey(t *testing.T) {
	svc := NewAIService(config.AIConfig{BaseURL: "http://127.0.0.1:1", Model: "m"})
	_, err := svc.Generate(context.Background(), GenerateInput{EmployeeName: "A", Learning: "B", Difficulty: "Easy"})
	if !errors.Is(err, util.ErrAIKeyMissing) {
		t.Fatalf("err = %v, want ErrAIKeyMissing", err)
	}
}

func TestAIServiceUpdateConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "rotated" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		io.WriteString(w, geminiReply("BADGE: b\nLINKEDIN_POST: p"))
	}))
	defer srv.Close()

	svc := NewAIService(config.AIConfig{BaseURL: srv.URL, Model: "m"})
	svc.UpdateConfig(config.AIConfig{BaseURL: srv.URL, Model: "m", APIKey: "rotated"})

	if _, err := svc.Generate(context.Background(), GenerateInput{EmployeeName: "A", Learning: "B", Difficulty: "Easy"}); err != nil {
		t.Fatalf("Generate after UpdateConfig: %v", err)
	}
}
