// Package ai fills the generated article fields (title variants, tags,
// categories) through a chat-completion service.
package ai

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"content_sync/internal/domain"
)

const (
	systemPrompt = "You are an editor and SEO specialist. Reply with only the requested value, no commentary."

	maxTags        = 5
	maxBodyContext = 8000
)

// Default prompt templates, seeded into storage on first start and editable
// there afterwards.
var DefaultPrompts = map[string]string{
	domain.FieldTitleHotnews: "From the title, lead and body, generate a short punchy headline of at most 50 characters. No quotation marks. Return only the headline.",
	domain.FieldTitleSocial:  "From the title, lead and body, generate a social-media headline of 70-120 characters: emotional but accurate, inviting a click. Return only the headline.",
	domain.FieldTitleSeo:     "From the title, lead and body, generate an SEO headline of 60-80 characters with key phrases, natural, no clickbait. Return only the headline.",
	domain.FieldTags:         "From the title, lead and body, generate exactly 5 concise topical tags separated by commas (no hashtags). Return only the comma-separated list.",
}

// PromptStore retrieves the editable prompt templates.
type PromptStore interface {
	Get(ctx context.Context, fieldName string) (string, error)
}

type Enricher struct {
	client  *openai.Client
	model   string
	prompts PromptStore
	logger  *slog.Logger
}

func NewEnricher(apiKey, model string, prompts PromptStore, logger *slog.Logger) *Enricher {
	return &Enricher{
		client:  openai.NewClient(apiKey),
		model:   model,
		prompts: prompts,
		logger:  logger.With("component", "ai"),
	}
}

// Enrich populates the AI-eligible fields of an article in place. Each
// completion call is attempted exactly once; a failure leaves that field
// unpopulated and is logged, never retried and never fatal.
func (e *Enricher) Enrich(ctx context.Context, article *domain.Article) {
	if v := e.generate(ctx, domain.FieldTitleHotnews, article); v != "" {
		article.TitleHotnews = v
	}
	if v := e.generate(ctx, domain.FieldTitleSocial, article); v != "" {
		article.TitleSocial = v
	}
	if v := e.generate(ctx, domain.FieldTitleSeo, article); v != "" {
		article.TitleSeo = v
	}
	if v := e.generate(ctx, domain.FieldTags, article); v != "" {
		article.Tags = SplitTags(v)
	}
}

func (e *Enricher) generate(ctx context.Context, fieldName string, article *domain.Article) string {
	promptText, err := e.prompts.Get(ctx, fieldName)
	if err != nil || promptText == "" {
		promptText = DefaultPrompts[fieldName]
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.7,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: promptText + "\n\n" + buildContext(article)},
		},
	})
	if err != nil {
		e.logger.Warn("field generation failed",
			"article_id", article.ArticleID,
			"field", fieldName,
			"error", err,
		)
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return strings.Trim(content, `"`)
}

// SplitTags turns a comma-separated completion into at most five tags.
func SplitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func buildContext(article *domain.Article) string {
	body := tagRe.ReplaceAllString(article.Body, " ")
	if len(body) > maxBodyContext {
		body = body[:maxBodyContext]
	}
	var sb strings.Builder
	sb.WriteString("TITLE: ")
	sb.WriteString(article.Title)
	sb.WriteString("\nLEAD: ")
	sb.WriteString(article.Lead)
	sb.WriteString("\nBODY:\n")
	sb.WriteString(body)
	return sb.String()
}
