package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/roach88/relpredict/internal/config"
	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
	"github.com/roach88/relpredict/internal/testutil"
)

// Harness is the scenario execution engine. Each scenario runs on its own
// predictor with a fixed run ID.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger routes predictor logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a harness. Logs are discarded unless WithLogger is given.
func New(opts ...Option) *Harness {
	h := &Harness{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run predicts the scenario's components and evaluates its expectations.
// The returned error covers setup problems (bad config or component
// values); expectation mismatches are recorded in the result.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	cfg, err := scenarioConfig(scenario)
	if err != nil {
		return nil, err
	}

	components := make([]record.Record, 0, len(scenario.Components))
	for i, c := range scenario.Components {
		r, err := record.FromMap(c)
		if err != nil {
			return nil, fmt.Errorf("components[%d]: %w", i, err)
		}
		components = append(components, r)
	}

	p := predict.New(cfg,
		predict.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(scenario.RunID)),
		predict.WithLogger(h.logger.With("scenario", scenario.Name)))
	report, err := p.PredictAll(ctx, components)
	if err != nil {
		return nil, fmt.Errorf("failed to predict: %w", err)
	}

	result := NewResult()
	result.Report = report
	for _, msg := range EvaluateExpectations(report, scenario) {
		result.AddError(msg)
	}
	return result, nil
}

// scenarioConfig overlays the scenario's config block on config.Default.
func scenarioConfig(scenario *Scenario) (*config.Config, error) {
	if scenario.Config.Kind == 0 {
		return config.Default(), nil
	}
	data, err := yaml.Marshal(&scenario.Config)
	if err != nil {
		return nil, fmt.Errorf("scenario config: %w", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario config: %w", err)
	}
	return cfg, nil
}
