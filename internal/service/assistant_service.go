package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/clients"
	"github.com/campusgpt/portal-api/internal/models"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
)

// Fixed fallback bodies returned whenever the language-model collaborator is
// unreachable or misbehaves. The chat and analysis features are advisory, so
// a failure degrades to these instead of an error status.
const (
	chatFallback     = "Sorry, I'm having trouble connecting to my brain right now. Please ensure the language model service is running."
	documentFallback = "Failed to connect to the AI model for analysis. Please check the language model service status."
)

type chatClient interface {
	Chat(ctx context.Context, messages []clients.ChatMessage) (string, error)
}

type campusSnapshotProvider interface {
	Timetable(user *models.User) []models.TimetableEntry
	Exams(user *models.User) []models.ExamEntry
	Events() []models.Event
}

// AssistantService proxies chat and document analysis to the language-model
// collaborator. Every operation returns a usable response body; collaborator
// failures are absorbed here.
type AssistantService struct {
	client  chatClient
	campus  campusSnapshotProvider
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewAssistantService constructs an AssistantService.
func NewAssistantService(client chatClient, campus campusSnapshotProvider, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{
		client:  client,
		campus:  campus,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Chat answers a free-form question grounded in the campus reference data.
// It never returns an error: collaborator failures yield the fixed fallback.
func (s *AssistantService) Chat(ctx context.Context, message string) models.ChatResponse {
	answer, hit := s.tryCache(ctx, "chat", message)
	if !hit {
		answer = s.complete(ctx, "chat", []clients.ChatMessage{
			{Role: "system", Content: s.buildSystemPrompt()},
			{Role: "user", Content: message},
		}, chatFallback, func(ok string) {
			s.storeCache(ctx, "chat", message, ok)
		})
	}

	return models.ChatResponse{
		Response:  answer,
		Timestamp: s.now().Format("03:04 PM"),
	}
}

// AnalyzeDocument answers a question about the provided document text.
// Missing inputs are validation failures with corrective messages; a
// collaborator failure still yields a well-formed response.
func (s *AssistantService) AnalyzeDocument(ctx context.Context, req models.DocumentQueryRequest) (*models.DocumentQueryResponse, error) {
	if strings.TrimSpace(req.DocumentText) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no document text received for analysis; paste the text of the document")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no question provided for analysis")
	}

	prompt := fmt.Sprintf(`You are an expert academic analyst.
Analyze the provided DOCUMENT TEXT and answer the user's QUESTION based only on the content of the document.
If the question asks for a summary, provide a comprehensive summary and key takeaways.
Keep the response concise and well-formatted (markdown headings or lists).

USER'S QUESTION: %q

DOCUMENT TEXT:
---
%s
---`, req.Query, req.DocumentText)

	cacheInput := req.Query + "\x00" + req.DocumentText
	summary, hit := s.tryCache(ctx, "document", cacheInput)
	if !hit {
		summary = s.complete(ctx, "document", []clients.ChatMessage{
			{Role: "user", Content: prompt},
		}, documentFallback, func(ok string) {
			s.storeCache(ctx, "document", cacheInput, ok)
		})
	}

	return &models.DocumentQueryResponse{
		Summary:   summary,
		Timestamp: s.now().Format("03:04 PM"),
	}, nil
}

func (s *AssistantService) complete(ctx context.Context, kind string, messages []clients.ChatMessage, fallback string, onSuccess func(string)) string {
	answer, err := s.client.Chat(ctx, messages)
	if err != nil {
		s.logger.Warn("assistant call failed", zap.String("kind", kind), zap.Error(err))
		if s.metrics != nil {
			s.metrics.ObserveAssistantQuery(kind, true)
		}
		return fallback
	}
	if s.metrics != nil {
		s.metrics.ObserveAssistantQuery(kind, false)
	}
	if onSuccess != nil {
		onSuccess(answer)
	}
	return answer
}

// buildSystemPrompt bundles the current date and read-only snapshots of the
// shared reference collections into the assistant's grounding context.
func (s *AssistantService) buildSystemPrompt() string {
	currentDate := s.now().Format("Monday, January 02, 2006")
	timetable, _ := json.Marshal(s.campus.Timetable(nil))
	exams, _ := json.Marshal(s.campus.Exams(nil))
	events, _ := json.Marshal(s.campus.Events())

	return fmt.Sprintf(`You are 'Campus GPT', a helpful AI assistant for a college.
Your goal is to assist students and faculty. Be friendly, concise, and helpful.
When asked about schedules, exams, or events, use the following data.
If you don't know the answer from the data, say you don't have that information.
- Current Date: %s
- Timetable: %s
- Exams: %s
- Events: %s`, currentDate, timetable, exams, events)
}

func (s *AssistantService) tryCache(ctx context.Context, kind, input string) (string, bool) {
	if !s.cache.Enabled() {
		return "", false
	}
	var cached string
	hit, err := s.cache.Get(ctx, cacheKey(kind, input), &cached)
	if err != nil || !hit {
		return "", false
	}
	if s.metrics != nil {
		s.metrics.ObserveAssistantQuery(kind, false)
	}
	return cached, true
}

func (s *AssistantService) storeCache(ctx context.Context, kind, input, answer string) {
	if !s.cache.Enabled() {
		return
	}
	_ = s.cache.Set(ctx, cacheKey(kind, input), answer, 0)
}

func cacheKey(kind, input string) string {
	digest := sha256.Sum256([]byte(input))
	return "assistant:" + kind + ":" + hex.EncodeToString(digest[:])
}
