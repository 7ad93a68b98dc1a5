package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/storestats/internal/dataset"
	"github.com/nao1215/storestats/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence; each one reads the dataset and adds its
// results to the report.
type Step interface {
	// Do executes the pipeline step.
	// Missing or mistyped columns are not errors: the step records a skipped
	// section and returns nil. A returned error means the step itself failed.
	Do(ctx context.Context, ds *dataset.Dataset, report *model.Report) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Failed steps are logged and their errors
// are recorded in the report, but subsequent steps still execute.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence against ds.
// Cancellation is checked before each step.
//
// Every step failure is recorded in report.Errors. Execute returns the first
// failure unless continueOnError is set, in which case it returns nil.
func (p *Pipeline) Execute(ctx context.Context, ds *dataset.Dataset, report *model.Report) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"source", ds.Source,
		)

		if err := step.Do(ctx, ds, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", ds.Source,
				"error", err,
			)

			report.AddError(fmt.Errorf("%s: %w", step.Name(), err))

			if !p.continueOnError {
				return err
			}
			continue
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
