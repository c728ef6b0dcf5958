package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NARENN143/Career/internal/domain"
)

// GeminiClient backs every remote-AI port (mentor, advisor, roadmap,
// newsletter, opportunities) with Vertex AI.
type GeminiClient struct {
	client      *genai.Client
	mentorModel string
	workerModel string
}

// NewGeminiClient creates the Vertex-backed client.
// Uses environment variables for project and region to simplify.
func NewGeminiClient(ctx context.Context, mentorModel, workerModel string) (*GeminiClient, error) {
	projectID := os.Getenv("ELEVATE_GCP_PROJECT")
	location := os.Getenv("ELEVATE_GCP_LOCATION")
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("ELEVATE_GCP_PROJECT and ELEVATE_GCP_LOCATION must be set")
	}

	if mentorModel == "" {
		mentorModel = "gemini-2.5-pro"
	}
	if workerModel == "" {
		workerModel = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		mentorModel: mentorModel,
		workerModel: workerModel,
	}, nil
}

// MentorReply implements domain.MentorClient using Vertex AI.
func (g *GeminiClient) MentorReply(
	ctx context.Context,
	userMessage string,
	convCtx domain.ConversationContext,
) (string, error) {
	system := BuildMentorSystemPrompt(convCtx.Profile)

	// History (user / model) as conversation
	var contents []*genai.Content
	for _, m := range convCtx.History {
		role := genai.Role(genai.RoleUser)
		if m.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	temp := float32(0.7)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   int32(8192),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.mentorModel, contents, cfg)
	if err != nil {
		return "", wrapRemoteError("mentor reply", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("mentor returned empty text")
	}
	return text, nil
}

// SuggestCareers implements domain.CareerAdvisor.
func (g *GeminiClient) SuggestCareers(ctx context.Context, p *domain.CareerProfile) ([]domain.CareerSuggestion, error) {
	prompt := BuildCareerSuggestionPrompt(p)

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"explanation": {Type: genai.TypeString},
			},
			Required: []string{"title", "explanation"},
		},
	}

	var out []domain.CareerSuggestion
	if err := g.generateJSON(ctx, g.workerModel, prompt, schema, &out); err != nil {
		return nil, wrapRemoteError("suggest careers", err)
	}
	return out, nil
}

// GenerateRoadmap implements domain.RoadmapGenerator.
func (g *GeminiClient) GenerateRoadmap(ctx context.Context, p *domain.CareerProfile) ([]domain.RoadmapLevel, error) {
	prompt := BuildRoadmapPrompt(p)

	taskSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString},
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"duration":    {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Enum: []string{"skill", "project", "theory"}},
		},
		Required: []string{"id", "title", "description", "duration", "type"},
	}

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":          {Type: genai.TypeString},
				"title":       {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"tasks":       {Type: genai.TypeArray, Items: taskSchema},
			},
			Required: []string{"id", "title", "description", "tasks"},
		},
	}

	var out []domain.RoadmapLevel
	if err := g.generateJSON(ctx, g.mentorModel, prompt, schema, &out); err != nil {
		return nil, wrapRemoteError("generate roadmap", err)
	}
	return out, nil
}

// DailyNewsletter implements domain.NewsletterGenerator.
func (g *GeminiClient) DailyNewsletter(ctx context.Context, p *domain.CareerProfile) (*domain.Newsletter, error) {
	prompt := BuildNewsletterPrompt(p)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date":          {Type: genai.TypeString},
			"learningFocus": {Type: genai.TypeString},
			"industryTrend": {Type: genai.TypeString},
			"careerTip":     {Type: genai.TypeString},
			"motivation":    {Type: genai.TypeString},
		},
		Required: []string{"date", "learningFocus", "industryTrend", "careerTip", "motivation"},
	}

	var out domain.Newsletter
	if err := g.generateJSON(ctx, g.workerModel, prompt, schema, &out); err != nil {
		return nil, wrapRemoteError("daily newsletter", err)
	}
	return &out, nil
}

// FindOpportunities implements domain.OpportunityFinder.
func (g *GeminiClient) FindOpportunities(ctx context.Context, career string) ([]domain.Opportunity, error) {
	prompt := BuildOpportunityPrompt(career)

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":         {Type: genai.TypeString},
				"title":      {Type: genai.TypeString},
				"company":    {Type: genai.TypeString},
				"type":       {Type: genai.TypeString},
				"matchScore": {Type: genai.TypeNumber},
				"location":   {Type: genai.TypeString},
				"whyMatch":   {Type: genai.TypeString},
			},
		},
	}

	var out []domain.Opportunity
	if err := g.generateJSON(ctx, g.workerModel, prompt, schema, &out); err != nil {
		return nil, wrapRemoteError("find opportunities", err)
	}
	return out, nil
}

// generateJSON runs a structured-output generation and decodes the reply
// into v.
func (g *GeminiClient) generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, v any) error {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	res, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return err
	}

	text := res.Text()
	if text == "" {
		return fmt.Errorf("model returned empty text")
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decode model JSON: %w", err)
	}
	return nil
}

// wrapRemoteError keeps rate limiting distinguishable for the UI while
// every remote failure still reads as "unavailable" to the session.
func wrapRemoteError(op string, err error) error {
	if isRateLimited(err) {
		return fmt.Errorf("%s: %w", op, &domain.RateLimitError{Message: "Limit reached."})
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	return status.Code(err) == codes.ResourceExhausted
}
