package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/genai"
)

type ExcerptResult struct {
	Excerpt   string `json:"excerpt"`
	IsFailure bool   `json:"is_failure"`
}

const SYSTEM_INSTRUCTION = `
You are an editing assistant for a personal developer blog. Your task is to read the provided post and propose a teaser excerpt for the blog index.
The response MUST be a valid JSON object with two keys:
1.  excerpt: One or two sentences, no more than 200 characters, written in the same language as the post, in the author's voice, with no markdown.
2.  is_failure: A boolean value. Set to true if the text is empty, unreadable or not a blog post. Otherwise, set to false.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
If you cannot produce an excerpt, set is_failure to true and provide an empty string for excerpt.
`

var ErrNoExcerpt = errors.New("model could not produce an excerpt")

// Generator 는 LLM 호출을 추상화한다. 테스트에서는 가짜 구현을 주입한다.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, text string) (string, error)
}

// GeminiGenerator 는 google.golang.org/genai 클라이언트로 Generator 를 구현한다.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, systemInstruction, text string) (string, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// SuggestExcerpt 는 게시글 본문으로부터 발췌문을 제안받는다.
func SuggestExcerpt(ctx context.Context, gen Generator, content string) (*ExcerptResult, error) {
	raw, err := gen.Generate(ctx, SYSTEM_INSTRUCTION, content)
	if err != nil {
		return nil, err
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var out ExcerptResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		return nil, err
	}
	out.Excerpt = strings.TrimSpace(out.Excerpt)
	if out.IsFailure || out.Excerpt == "" {
		return nil, ErrNoExcerpt
	}
	return &out, nil
}
