package gocubie

import "github.com/rs/zerolog"

// Option configures a Tracker or Device.
type Option func(*config)

type config struct {
	moveHistory bool
	sessionID   string
	logger      zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		logger:      zerolog.Nop(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves().
// Undo needs the history.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithSessionID sets the session identifier attached to log lines.
// A random UUID is used when unset.
func WithSessionID(id string) Option {
	return func(c *config) {
		c.sessionID = id
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
