package quiz

import (
	"io"

	"charm.land/log/v2"

	"github.com/abhisek/quizbank/internal/bank"
)

// AppState is the state a host threads through its handlers: the shared
// read-only bank and the live session built from it.
type AppState struct {
	Bank    *bank.Bank
	Size    int
	Session *Session

	rng    Rand
	logger *log.Logger
}

// Option configures an AppState.
type Option func(*AppState)

// WithRand sets the sampling source.
func WithRand(r Rand) Option {
	return func(a *AppState) { a.rng = r }
}

// WithLogger sets the logger used for session lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(a *AppState) { a.logger = l }
}

// NewAppState creates the state and starts its first session.
func NewAppState(b *bank.Bank, size int, opts ...Option) *AppState {
	if size <= 0 {
		size = DefaultSize
	}
	a := &AppState{Bank: b, Size: size}
	for _, opt := range opts {
		opt(a)
	}
	a.start()
	return a
}

// Reset discards the current session and samples a new one. It is the only
// way to obtain a different subset of questions.
func (a *AppState) Reset() *Session {
	return a.start()
}

// Logger returns the configured logger, or one that discards everything.
func (a *AppState) Logger() *log.Logger {
	if a.logger == nil {
		return log.New(io.Discard)
	}
	return a.logger
}

func (a *AppState) start() *Session {
	a.Session = Start(a.Bank, a.Size, a.rng)
	if a.logger != nil {
		if w := a.Session.Warning; w != nil {
			a.logger.Warn("small question bank", "questions", w.Size, "recommended", w.Minimum)
		}
		a.logger.Debug("session started", "session", a.Session.ID, "questions", a.Session.Len())
	}
	return a.Session
}
