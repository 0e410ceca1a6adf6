package concierge

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

func newGeminiGenerator(apiKey, modelName string) *geminiGenerator {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &geminiGenerator{client: client, modelName: modelName}
}

// Chat runs one grounded conversation turn with the book_appointment tool
// declared. At most one tool invocation is expected per turn.
func (g *geminiGenerator) Chat(ctx context.Context, system string, history []*genai.Content, message string) (*genai.GenerateContentResponse, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.5)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	model.Tools = []*genai.Tool{bookAppointmentTool()}

	chat := model.StartChat()
	chat.History = history

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini chat error: %w", err)
	}
	return resp, nil
}

// Generate runs a one-shot completion without tools.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	model := g.client.GenerativeModel(g.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return resp, nil
}

func bookAppointmentTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        "book_appointment",
			Description: "Book an appointment for a client when they provide necessary details (name, email, service, date, time).",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"clientName":  {Type: genai.TypeString, Description: "Name of the client"},
					"clientEmail": {Type: genai.TypeString, Description: "Email address (optional, use placeholder if not provided)"},
					"serviceName": {Type: genai.TypeString, Description: "Name of the service to book"},
					"date":        {Type: genai.TypeString, Description: "Date of appointment (YYYY-MM-DD)"},
					"time":        {Type: genai.TypeString, Description: "Time of appointment (e.g. 10:00 AM)"},
				},
				Required: []string{"clientName", "serviceName", "date", "time"},
			},
		}},
	}
}
