package conversations

import (
	"context"
	"errors"
	"log/slog"
)

const (
	ReasonNotFound  = "not_found"
	ReasonMalformed = "malformed"
	ReasonNotObject = "not_object"
)

// LoadFailure describes a recovered load failure.
type LoadFailure struct {
	Path   string
	Reason string
	Err    error
}

// Notifier receives recovered load failures.
type Notifier interface {
	NotifyLoadFailure(f LoadFailure) error
}

// Loader reads the store fresh on every call. Nothing is cached.
type Loader struct {
	path     string
	logger   *slog.Logger
	notifier Notifier
}

// NewLoader creates a loader for path. notifier may be nil.
func NewLoader(path string, logger *slog.Logger, notifier Notifier) *Loader {
	return &Loader{path: path, logger: logger, notifier: notifier}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the parsed store. A missing or malformed file is logged and
// collapsed into Empty(); other I/O errors are returned to the caller.
func (l *Loader) Load(ctx context.Context) (Store, error) {
	s, err := Read(l.path)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, ErrNotFound):
		l.logger.ErrorContext(ctx, "conversations file not found", "path", l.path)
		l.notify(ctx, LoadFailure{Path: l.path, Reason: ReasonNotFound, Err: err})
		return Empty(), nil
	case errors.Is(err, ErrNotObject):
		l.logger.ErrorContext(ctx, "conversations file is not an object", "path", l.path, "error", err)
		l.notify(ctx, LoadFailure{Path: l.path, Reason: ReasonNotObject, Err: err})
		return Empty(), nil
	case errors.Is(err, ErrMalformed):
		l.logger.ErrorContext(ctx, "invalid JSON in conversations file", "path", l.path, "error", err)
		l.notify(ctx, LoadFailure{Path: l.path, Reason: ReasonMalformed, Err: err})
		return Empty(), nil
	default:
		return nil, err
	}
}

func (l *Loader) notify(ctx context.Context, f LoadFailure) {
	if l.notifier == nil {
		return
	}
	if err := l.notifier.NotifyLoadFailure(f); err != nil {
		l.logger.WarnContext(ctx, "failed to publish load failure", "reason", f.Reason, "error", err)
	}
}
