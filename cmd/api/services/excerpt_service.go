package services

import (
	"context"
	"errors"
	"strings"

	"portfolio/cmd/api/quota"
	"portfolio/content"
	"portfolio/forms"
	"portfolio/summarizer"
)

var (
	ErrExcerptDisabled = errors.New("excerpt suggestions are not configured")
	ErrQuotaExhausted  = errors.New("daily excerpt quota exhausted")
)

const maxExcerptInputRunes = 20000

// ExcerptService asks the LLM for a post excerpt within the configured quota.
type ExcerptService struct {
	gen     summarizer.Generator
	limiter *quota.ExcerptQuotaLimiter
}

// NewExcerptService returns a service; a nil generator disables suggestions.
func NewExcerptService(gen summarizer.Generator, limiter *quota.ExcerptQuotaLimiter) *ExcerptService {
	return &ExcerptService{gen: gen, limiter: limiter}
}

func (s *ExcerptService) Enabled() bool { return s.gen != nil }

func (s *ExcerptService) Suggest(ctx context.Context, postContent string) (string, error) {
	if s.gen == nil {
		return "", ErrExcerptDisabled
	}
	text := content.PlainText(postContent)
	if strings.TrimSpace(text) == "" {
		return "", &forms.ValidationError{Field: "content", Message: "Content is required"}
	}
	if r := []rune(text); len(r) > maxExcerptInputRunes {
		text = string(r[:maxExcerptInputRunes])
	}

	if s.limiter != nil {
		ok, err := s.limiter.WaitAndReserve(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrQuotaExhausted
		}
	}

	res, err := summarizer.SuggestExcerpt(ctx, s.gen, text)
	if err != nil {
		return "", err
	}
	return res.Excerpt, nil
}
