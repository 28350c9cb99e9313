package services

import (
	"context"

	"portfolio/cmd/api/trace"
	"portfolio/eventbus"
	"portfolio/internal/logger"
)

// publish sends payload to the content topic. Delivery is best effort for the caller;
// the error is logged and returned so callers that care can surface it.
func publish(ctx context.Context, bus eventbus.EventBus, id string, payload any) error {
	if bus == nil {
		return nil
	}
	evt, err := eventbus.NewJSONEvent(id, payload, 0)
	if err != nil {
		return err
	}
	if err := bus.Publish(ctx, eventbus.TopicContentEvents.Base(), evt); err != nil {
		logger.ErrorWithFields("event publish failed", trace.Fields(ctx, logger.Fields{
			"event_id": evt.ID,
			"error":    err.Error(),
		}))
		return err
	}
	return nil
}
