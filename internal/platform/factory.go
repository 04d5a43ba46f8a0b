package platform

import (
	"fmt"

	"github.com/aretw0/scribe/pkg/core"
)

// New builds an empty notebook from the given options.
//
//	nb, err := scribe.New(scribe.WithIDStrategy("timestamp"))
func New(opts ...Option) (*core.Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.eventBuffer < 0 {
		return nil, fmt.Errorf("event buffer must not be negative: %d", o.eventBuffer)
	}

	ids := o.ids
	if ids == nil {
		var err error
		ids, err = core.NewIDGenerator(o.idStrategy, o.clock)
		if err != nil {
			return nil, err
		}
	}

	if o.logger != nil {
		o.logger.Debug("notebook created", "id_strategy", ids.Strategy(), "event_buffer", o.eventBuffer)
	}

	return core.NewNotebook(core.NotebookConfig{
		IDs:         ids,
		Clock:       o.clock,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	}), nil
}
