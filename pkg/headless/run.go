package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/tui"
)

const (
	// DefaultWidth is the preview width when none is given
	DefaultWidth = 80
	// MinWidth fits the badge, a few title cells and the actions
	MinWidth = 40
)

// Option configures a preview run
type Option func(*runConfig)

// WithWidth sets the number of columns to render into
func WithWidth(width int) Option {
	return func(c *runConfig) {
		c.width = width
	}
}

// WithGeneratorOptions forwards options to the message generator
func WithGeneratorOptions(opts ...conversation.Option) Option {
	return func(c *runConfig) {
		c.generatorOpts = append(c.generatorOpts, opts...)
	}
}

// RunPreview renders the header, count generated messages and the
// trailing label to w without opening a terminal screen.
func RunPreview(w io.Writer, identity conversation.Identity, t tui.Theme, count int, opts ...Option) error {
	if count <= 0 {
		return fmt.Errorf("preview needs at least one message, got %d", count)
	}

	cfg := &runConfig{width: DefaultWidth}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.width < MinWidth {
		return fmt.Errorf("preview width must be at least %d columns, got %d", MinWidth, cfg.width)
	}

	r, err := newRunner(w, identity, t, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize preview: %w", err)
	}

	if err := r.run(context.Background(), count); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}
