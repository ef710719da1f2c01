package terminal

import (
	"log/slog"

	"github.com/sanity-io/litter"

	"github.com/MarissaSkud/Blackjack/events"
)

// Tracer dumps every engine event, for debugging a session
type Tracer struct {
	logger *slog.Logger
}

// NewTracer creates an event tracer logging through the given logger
func NewTracer(logger *slog.Logger) *Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracer{logger: logger}
}

// HandleEvent logs the event name and dumps its fields
func (t *Tracer) HandleEvent(event events.Event) {
	t.logger.Debug("engine event", "name", event.Name())
	litter.D(event)
}
