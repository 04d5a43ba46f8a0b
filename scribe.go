package scribe

import (
	"log/slog"

	"github.com/aretw0/scribe/internal/platform"
	"github.com/aretw0/scribe/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Notebook is a public alias for the note collection plus its editor session.
type Notebook = core.Notebook

// Event is a public alias for a notebook transition.
type Event = core.Event

// IDGenerator is a public alias for the note ID strategy.
type IDGenerator = core.IDGenerator

// Clock is a public alias for the time source used by a notebook.
type Clock = core.Clock

// --- Errors ---

var (
	ErrNoteNotFound  = core.ErrNoteNotFound
	ErrSessionClosed = core.ErrSessionClosed
	ErrNotEditing    = core.ErrNotEditing

	// ErrConfigNotFound is returned by FindConfig when no config file exists up the tree.
	ErrConfigNotFound = platform.ErrConfigNotFound
)

// --- Configuration ---

// Option defines a functional option for configuring a Notebook.
type Option = platform.Option

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDStrategy selects how new note IDs are generated ("monotonic" or "timestamp").
func WithIDStrategy(name string) Option {
	return platform.WithIDStrategy(name)
}

// WithIDGenerator injects a custom ID generator. It takes precedence over WithIDStrategy.
func WithIDGenerator(g IDGenerator) Option {
	return platform.WithIDGenerator(g)
}

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return platform.WithClock(clock)
}

// WithEventBuffer allows specifying the size of the event channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates an empty Notebook with the editor closed.
func New(opts ...Option) (*Notebook, error) {
	return platform.New(opts...)
}

// --- Safety & Utils ---

// FindConfig looks upwards from startDir for a scribe.yaml or scribe.yml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}
