package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostPublished        EventType = "post.published"
	NewsletterSubscribed EventType = "newsletter.subscribed"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func newBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    "api",
		Version:   "1.0",
	}
}

// PostPublishedEvent 게시글이 공개 상태가 되었을 때 발행
type PostPublishedEvent struct {
	BaseEvent
	PostID string `json:"post_id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	URL    string `json:"url"`
}

func NewPostPublished(postID, title, slug, baseURL string) PostPublishedEvent {
	return PostPublishedEvent{
		BaseEvent: newBase(PostPublished),
		PostID:    postID,
		Title:     title,
		Slug:      slug,
		URL:       fmt.Sprintf("%s/blog/%s", baseURL, slug),
	}
}

// NewsletterSubscribedEvent 뉴스레터 구독 신청 (저장하지 않고 이벤트로만 전달)
type NewsletterSubscribedEvent struct {
	BaseEvent
	Email string `json:"email"`
}

func NewNewsletterSubscribed(email string) NewsletterSubscribedEvent {
	return NewsletterSubscribedEvent{
		BaseEvent: newBase(NewsletterSubscribed),
		Email:     email,
	}
}
