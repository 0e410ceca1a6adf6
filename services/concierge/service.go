package concierge

import (
	"context"
	"encoding/json"
	"strings"

	"elysium/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// Fixed replies. The concierge degrades to these rather than surfacing
// transport or model errors into the chat.
const (
	replyBooked       = "ধন্যবাদ! আপনার অ্যাপয়েন্টমেন্টটি আমাদের সিস্টেমে বুক করা হয়েছে। আমরা শীঘ্রই আপনার সাথে যোগাযোগ করব।"
	replyCannotAnswer = "দুঃখিত, আমি এই মুহূর্তে উত্তর দিতে পারছি না।"
	replyServerError  = "সার্ভার এরুটির কারণে সংযোগ বিচ্ছিন্ন হয়েছে। দয়া করে অপেক্ষা করুন।"

	summaryFallback = "Analytics currently offline."
	summaryDefault  = "Systems operational. Have a wonderful day."
)

// Converse forwards the bounded history plus the new message and decodes
// the model's answer into the tagged reply variant.
func (s *DefaultConciergeService) Converse(ctx context.Context, history []models.ChatMessage, message string,
	services []models.Service, content models.CMSContent) models.ConciergeReply {

	system := buildSystemInstruction(services, content)
	resp, err := s.gen.Chat(ctx, system, toChatHistory(history), message)
	if err != nil {
		s.logger.Warn("concierge turn failed", zap.Error(err))
		return models.ConciergeReply{Text: replyServerError}
	}
	return decodeReply(resp)
}

// Summarize produces the admin morning briefing. Failures degrade to a
// fixed fallback string.
func (s *DefaultConciergeService) Summarize(ctx context.Context, appointments []models.Appointment) string {
	data, err := json.Marshal(appointments)
	if err != nil {
		return summaryFallback
	}
	resp, err := s.gen.Generate(ctx, buildInsightsPrompt(string(data)))
	if err != nil {
		s.logger.Warn("briefing generation failed", zap.Error(err))
		return summaryFallback
	}
	text := collectText(resp)
	if text == "" {
		return summaryDefault
	}
	return text
}

// toChatHistory maps the most recent turns into the wire format. Roles
// other than "user" are forwarded as the model's.
func toChatHistory(history []models.ChatMessage) []*genai.Content {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return out
}

// decodeReply is the single place transport shapes are branched on: a
// book_appointment function call becomes booking data, anything else is a
// plain text reply.
func decodeReply(resp *genai.GenerateContentResponse) models.ConciergeReply {
	if call, ok := findBookingCall(resp); ok {
		booking := &models.BookingData{
			ClientName:  stringArg(call.Args, "clientName"),
			ClientEmail: stringArg(call.Args, "clientEmail"),
			ServiceName: stringArg(call.Args, "serviceName"),
			Date:        stringArg(call.Args, "date"),
			Time:        stringArg(call.Args, "time"),
		}
		if booking.ClientEmail == "" {
			booking.ClientEmail = PlaceholderEmail
		}
		return models.ConciergeReply{Text: replyBooked, Booking: booking}
	}

	text := collectText(resp)
	if text == "" {
		return models.ConciergeReply{Text: replyCannotAnswer}
	}
	return models.ConciergeReply{Text: text}
}

func findBookingCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if call, ok := part.(genai.FunctionCall); ok && call.Name == "book_appointment" {
				return call, true
			}
		}
	}
	return genai.FunctionCall{}, false
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}
