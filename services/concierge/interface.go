package concierge

import (
	"context"

	"elysium/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// Service is the conversational intent resolver. Converse never returns an
// error: every failure degrades to a fixed apology reply, and a failure can
// never produce booking data.
type Service interface {
	Converse(ctx context.Context, history []models.ChatMessage, message string,
		services []models.Service, content models.CMSContent) models.ConciergeReply
	Summarize(ctx context.Context, appointments []models.Appointment) string
}

// generator is the remote model boundary. The Gemini client implements it;
// tests substitute a stub.
type generator interface {
	Chat(ctx context.Context, system string, history []*genai.Content, message string) (*genai.GenerateContentResponse, error)
	Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// DefaultConciergeService implements Service over a generator.
type DefaultConciergeService struct {
	gen    generator
	logger *zap.Logger
}

// NewDefaultConciergeService wires the resolver to the Gemini API.
func NewDefaultConciergeService(apiKey, model string, logger *zap.Logger) *DefaultConciergeService {
	return &DefaultConciergeService{
		gen:    newGeminiGenerator(apiKey, model),
		logger: logger,
	}
}
