package log

import "github.com/rs/zerolog"

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the logger's level.
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	}
}

// WithCaller adds the calling file and line to each event.
func WithCaller() Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	}
}

// WithField attaches a constant field to every event.
func WithField(key, value string) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Str(key, value).Logger()
	}
}
