package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/logger"
	"github.com/killallgit/convo/pkg/tui"
)

// runner renders one preview
type runner struct {
	identity  conversation.Identity
	generator *conversation.Generator
	output    *Output
	config    *runConfig
	log       *logger.ComponentLogger
}

// runConfig contains preview configuration
type runConfig struct {
	width         int
	generatorOpts []conversation.Option
}

func newRunner(w io.Writer, identity conversation.Identity, t tui.Theme, cfg *runConfig) (*runner, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	generator, err := conversation.NewGenerator(identity.LastMessage, cfg.generatorOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create message generator: %w", err)
	}

	return &runner{
		identity:  identity,
		generator: generator,
		output:    NewOutput(w, t, cfg.width),
		config:    cfg,
		log:       logger.WithComponent("headless"),
	}, nil
}

// run writes the header, count messages and the footer
func (r *runner) run(ctx context.Context, count int) error {
	r.log.Info("rendering preview", "name", r.identity.Name, "messages", count, "width", r.config.width)

	if err := r.output.Header(r.identity.Name); err != nil {
		return err
	}

	for position := 0; position < count; position++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := r.generator.Message(position)
		if err != nil {
			r.log.Error("failed to build message", "position", position, "error", err)
			r.output.Error(err.Error())
			continue
		}
		if err := r.output.Message(msg); err != nil {
			return err
		}
	}

	return r.output.Footer()
}
