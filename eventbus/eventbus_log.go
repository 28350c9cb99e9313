package eventbus

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"portfolio/internal/logger"
)

// LogEventBus 는 Kafka 브로커가 설정되지 않았을 때 사용하는 EventBus 이다.
// 이벤트는 구조화 로그로만 남는다.
type LogEventBus struct {
	mu     sync.Mutex
	closed bool
}

func NewLogEventBus() *LogEventBus {
	return &LogEventBus{}
}

func (b *LogEventBus) Publish(ctx context.Context, topic string, event Event) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrClosed
	}

	logger.InfoWithFields("event published", logger.Fields{
		"topic":    topic,
		"event_id": event.ID,
		"payload":  redactPayload(event),
	})
	return nil
}

// 로그에 남기지 않을 payload 필드. 값은 마스킹된다.
var sensitiveKeys = map[string]bool{"email": true}

// redactPayload 는 payload 를 로그용 문자열로 바꾸면서 개인정보 필드를 마스킹한다.
// JSON 객체가 아니면 길이만 남긴다.
func redactPayload(evt Event) string {
	fields, err := DecodeJSON[map[string]any](evt)
	if err != nil || fields == nil {
		return "<" + strconv.Itoa(len(evt.Payload)) + " bytes>"
	}
	for k, v := range fields {
		if !sensitiveKeys[k] {
			continue
		}
		if s, ok := v.(string); ok {
			fields[k] = maskEmail(s)
		} else {
			fields[k] = "***"
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "<unprintable>"
	}
	return string(b)
}

// maskEmail 은 로컬 파트의 첫 글자와 도메인만 남긴다. "jane@example.com" → "j***@example.com"
func maskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	_, size := utf8.DecodeRuneInString(email)
	return email[:size] + "***" + email[at:]
}

func (b *LogEventBus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

// New returns a Kafka bus when brokers are configured and a LogEventBus otherwise.
func New(brokers string) (EventBus, error) {
	if brokers == "" {
		logger.Log.Warn("KAFKA_BOOTSTRAP_SERVERS not set; events are only logged")
		return NewLogEventBus(), nil
	}
	return NewKafkaEventBus(brokers)
}
