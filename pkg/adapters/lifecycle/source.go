package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/scribe/pkg/core"
)

type notebookSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits notebook events.
// It bridges the typed notebook event channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &notebookSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *notebookSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *notebookSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

// Forward starts src and hands every event that is a core.Event to fn until ctx is done.
// Events of other types are skipped.
func Forward(ctx context.Context, src lifecycle.Source, fn func(core.Event)) error {
	if err := src.Start(ctx); err != nil {
		return err
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range src.Events() {
			if ce, ok := e.(core.Event); ok {
				fn(ce)
			}
		}
		return nil
	})
	return nil
}
