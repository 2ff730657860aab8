package service

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/util"
	"badge_studio_backend/pkg/monitoring"
	"badge_studio_backend/pkg/tracing"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	badgeMarker    = "BADGE:"
	linkedInMarker = "LINKEDIN_POST:"
)

// GenerateInput 生成徽章文案所需的三个输入
type GenerateInput struct {
	EmployeeName string
	Learning     string
	Difficulty   string
}

type GeneratedContent struct {
	BadgeText    string
	LinkedinPost string
}

// ContentGenerator 由 AIService 实现
type ContentGenerator interface {
	Generate(ctx context.Context, in GenerateInput) (*GeneratedContent, error)
}

type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// UpdateConfig 配置热加载时替换上游地址、模型和密钥
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.Timeout()}
}

func (s *AIService) snapshot() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func BuildPrompt(in GenerateInput) string {
	return fmt.Sprintf(`You are an expert AI copywriter and branding strategist. You will receive three inputs: %[1]s, %[2]s, and %[3]s.

### Task:
Generate TWO outputs clearly separated:

1. **Badge Description**: A short, creative, and celebratory text that can be used to design a digital badge image. It should include the employee's name, what they learned, and the difficulty level. Keep it under 15 words. Tone: motivational and professional.

2. **LinkedIn Post**: A fully optimized LinkedIn post (150-200 words) that:
   - Highlights the employee's achievement naturally.
   - Mentions what they learned in a proud, growth-oriented way.
   - Subtly mentions Branding Pioneers as a culture of continuous learning.
   - Uses an engaging tone, with small storytelling elements.
   - Includes a soft call-to-action (e.g., 'connect', 'let's share learnings', or 'celebrate together').
   - Uses 3-4 relevant hashtags at the end (#LearningJourney #BrandingPioneers #GrowthMindset etc.).

### Format Your Output Exactly As:
BADGE: <badge text here>
LINKEDIN_POST: <linkedin post text here>

### Inputs:
Employee Name: %[1]s
Learning: %[2]s
Difficulty: %[3]s`, in.EmployeeName, in.Learning, in.Difficulty)
}

func (s *AIService) Generate(ctx context.Context, in GenerateInput) (*GeneratedContent, error) {
	text, err := s.complete(ctx, BuildPrompt(in))
	if err != nil {
		return nil, err
	}
	return ParseGeneratedContent(text)
}

// complete 调用 generateContent，返回第一个候选的文本
func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	cfg, client := s.snapshot()
	if cfg.APIKey == "" {
		return "", util.ErrAIKeyMissing
	}

	ctx, span := tracing.Tracer.Start(ctx, "generator.generateContent", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("generator.model", cfg.Model))

	start := time.Now()
	statusLabel := "error"
	defer func() {
		monitoring.UpstreamDuration.WithLabelValues(statusLabel).Observe(time.Since(start).Seconds())
	}()

	jsonData, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(cfg.BaseURL, "/"), cfg.Model, url.QueryEscape(cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", fmt.Errorf("%w: %v", util.ErrUpstream, redactKey(err.Error(), cfg.APIKey))
	}
	defer resp.Body.Close()

	statusLabel = strconv.Itoa(resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", util.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, "non-2xx")
		return "", fmt.Errorf("%w: status %d: %s", util.ErrUpstream, resp.StatusCode, truncate(string(body), 512))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %v", util.ErrUpstream, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: invalid response from generator", util.ErrUpstream)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// ParseGeneratedContent 从模型回复中提取徽章文案和 LinkedIn 帖子。
// 先逐行匹配前缀（帖子可跨多行，直到下一个 BADGE: 行）；任一为空时按 LINKEDIN_POST: 切分原文兜底。
func ParseGeneratedContent(text string) (*GeneratedContent, error) {
	var badge string
	var post []string
	inPost := false

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		switch {
		case strings.HasPrefix(line, badgeMarker):
			badge = strings.TrimSpace(strings.TrimPrefix(line, badgeMarker))
			inPost = false
		case strings.HasPrefix(line, linkedInMarker):
			post = []string{strings.TrimPrefix(line, linkedInMarker)}
			inPost = true
		case inPost:
			post = append(post, line)
		}
	}
	linkedin := strings.TrimSpace(strings.Join(post, "\n"))

	if badge == "" || linkedin == "" {
		if !strings.Contains(text, badgeMarker) || !strings.Contains(text, linkedInMarker) {
			return nil, fmt.Errorf("%w: missing %s or %s marker", util.ErrParse, badgeMarker, linkedInMarker)
		}
		parts := strings.SplitN(text, linkedInMarker, 2)
		head := parts[0]
		if idx := strings.Index(head, badgeMarker); idx >= 0 {
			head = head[idx+len(badgeMarker):]
		}
		badge = strings.TrimSpace(head)
		linkedin = strings.TrimSpace(parts[1])
	}

	if badge == "" || linkedin == "" {
		return nil, fmt.Errorf("%w: empty badge text or post", util.ErrParse)
	}

	return &GeneratedContent{BadgeText: badge, LinkedinPost: linkedin}, nil
}

func redactKey(msg, key string) string {
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, url.QueryEscape(key), "***")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
