package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Topic 은 기본 토픽 이름과 DLQ 토픽 이름을 관리한다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ 는 DLQ 토픽 이름을 반환한다 (예: my_topic.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// Event 는 Kafka 메시지의 페이로드로 사용되는 구조체이다.
type Event struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"` // 현재 재시도 횟수 (0부터 시작)
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

// EventBus 는 이벤트 발행의 추상화이다. 이 서비스는 발행만 하고 소비는 하지 않는다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// DefaultMaxRetry 는 다운스트림 컨슈머가 참고하는 기본 최대 재시도 횟수이다.
const DefaultMaxRetry = 5

var ErrClosed = errors.New("event bus closed")
