package assemble

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures an Assembler.
type Option func(*Options)

// Options holds Assembler parameters.
type Options struct {
	// Logger receives per-cell debug records and a summary. Defaults to a
	// logger that discards everything.
	Logger logrus.FieldLogger

	// Corner, if non-zero, is the ID of the corner tile to anchor at (0,0).
	// By default the corner with the smallest ID is used.
	Corner uint64
}

// DefaultOptions returns options with a silent logger and automatic corner choice.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes assembly logs to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCorner anchors the given corner tile at (0,0).
func WithCorner(id uint64) Option {
	return func(o *Options) { o.Corner = id }
}
