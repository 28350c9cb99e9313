package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONEvent(t *testing.T) {
	type payload struct {
		Slug string `json:"slug"`
	}

	evt, err := NewJSONEvent("", payload{Slug: "hello"}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, DefaultMaxRetry, evt.MaxRetry)
	assert.Equal(t, 0, evt.Retry)

	got, err := DecodeJSON[payload](evt)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Slug)

	evt, err = NewJSONEvent("fixed", payload{}, 2)
	require.NoError(t, err)
	assert.Equal(t, "fixed", evt.ID)
	assert.Equal(t, 2, evt.MaxRetry)

	_, err = NewJSONEvent("", make(chan int), 0)
	assert.Error(t, err)
}

func TestTopicNames(t *testing.T) {
	topic := NewTopic("portfolio.content.events")
	assert.Equal(t, "portfolio.content.events", topic.Base())
	assert.Equal(t, "portfolio.content.events.dlq", topic.DLQ())
}

func TestLogEventBus(t *testing.T) {
	bus, err := New("")
	require.NoError(t, err)

	evt, err := NewJSONEvent("", map[string]string{"k": "v"}, 0)
	require.NoError(t, err)
	assert.NoError(t, bus.Publish(context.Background(), TopicContentEvents.Base(), evt))

	bus.Close()
	assert.ErrorIs(t, bus.Publish(context.Background(), TopicContentEvents.Base(), evt), ErrClosed)
}

func TestRedactPayloadMasksEmail(t *testing.T) {
	evt, err := NewJSONEvent("", map[string]string{"email": "jane@example.com", "source": "home"}, 0)
	require.NoError(t, err)

	out := redactPayload(evt)
	assert.NotContains(t, out, "jane@example.com")
	assert.Contains(t, out, `"email":"j***@example.com"`)
	assert.Contains(t, out, `"source":"home"`)
}

func TestRedactPayloadNonObject(t *testing.T) {
	assert.Equal(t, "<5 bytes>", redactPayload(Event{Payload: []byte(`[1,2]`)}))
	assert.Equal(t, "***", maskEmail("not-an-email"))
	assert.Equal(t, "***", maskEmail("@example.com"))
}
