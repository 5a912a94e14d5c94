package executor

import (
	"fmt"
	"io"

	"github.com/arthur-debert/charon/pkg/actions"
	"github.com/arthur-debert/charon/pkg/errors"
	"github.com/arthur-debert/charon/pkg/logging"
	"github.com/rs/zerolog"
)

// Renderer writes an action result for the user
type Renderer interface {
	Render(w io.Writer, res actions.Result) error
}

// PlainRenderer writes the same text that goes into the record
type PlainRenderer struct{}

func (PlainRenderer) Render(w io.Writer, res actions.Result) error {
	_, err := io.WriteString(w, res.Log())
	return err
}

// Options contains configuration for the executor
type Options struct {
	// Record receives the log of every action that did not fail
	Record io.Writer
	// Out receives rendered results unless Quiet is set
	Out      io.Writer
	Errors   io.Writer
	Quiet    bool
	Renderer Renderer
	Logger   zerolog.Logger
}

// Executor runs actions and writes their logs
type Executor struct {
	record   io.Writer
	out      io.Writer
	errs     io.Writer
	quiet    bool
	renderer Renderer
	logger   zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	return &Executor{
		record:   opts.Record,
		out:      opts.Out,
		errs:     opts.Errors,
		quiet:    opts.Quiet,
		renderer: renderer,
		logger:   logger,
	}
}

// Run executes acts with ctx using a new Executor
func Run(ctx actions.ExecContext, acts []actions.Action, opts Options) (*Summary, error) {
	return New(opts).Run(ctx, acts)
}

// Run executes every action in order. Only a failed record write stops the
// run; it is returned with the summary so far.
func (e *Executor) Run(ctx actions.ExecContext, acts []actions.Action) (*Summary, error) {
	summary := &Summary{DryRun: ctx.DryRun}

	for i, action := range acts {
		e.logger.Debug().
			Int("index", i+1).
			Stringer("kind", action.Kind()).
			Str("description", action.Description()).
			Bool("dry_run", ctx.DryRun).
			Msg("Executing action")

		res := action.Execute(ctx)
		summary.Add(res)

		if res.Err != nil {
			e.logger.Error().Err(res.Err).Str("description", action.Description()).Msg("Action failed")
			e.reportf("Error: %v\n", res.Err)
			continue
		}
		for _, f := range res.Failures() {
			e.reportf("Error: could not install %s: %v\n", f.Dest, f.Err)
		}

		text := res.Log()
		if text == "" {
			continue
		}
		if !e.quiet && e.out != nil {
			if err := e.renderer.Render(e.out, res); err != nil {
				e.logger.Warn().Err(err).Msg("Could not render result")
			}
		}
		if e.record != nil {
			if _, err := io.WriteString(e.record, text); err != nil {
				return summary, errors.Wrap(err, errors.ErrRecordWrite, "could not write record")
			}
		}
	}

	e.logger.Info().
		Int("actions", summary.Actions).
		Int("copied", summary.Copied).
		Int("failed", summary.Failed).
		Msg("Execution finished")
	return summary, nil
}

func (e *Executor) reportf(format string, args ...interface{}) {
	if e.errs != nil {
		fmt.Fprintf(e.errs, format, args...)
	}
}
