package predict

import (
	"context"
	"io"
	"log/slog"

	"github.com/roach88/relpredict/internal/config"
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Predictor runs components through their family calculations.
type Predictor struct {
	cfg    *config.Config
	runIDs RunIDGenerator
	logger *slog.Logger
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithLogger sets the logger. Predictors log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Predictor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRunIDGenerator replaces the UUIDv7 run ID generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(p *Predictor) {
		if g != nil {
			p.runIDs = g
		}
	}
}

// New creates a Predictor. A nil cfg uses config.Default.
func New(cfg *config.Config, opts ...Option) *Predictor {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Predictor{
		cfg:    cfg,
		runIDs: UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// method resolves hazard_rate_method_id; absent or unset uses the
// configured default.
func (p *Predictor) method(r record.Record) (int, error) {
	rd := milhdbk217f.NewReader(r)
	m := rd.OptInt("hazard_rate_method_id")
	if err := rd.Err(); err != nil {
		return 0, err
	}
	if m <= 0 {
		m = p.cfg.Method
	}
	switch m {
	case config.MethodPartCount, config.MethodPartStress:
		return m, nil
	default:
		return 0, milhdbk217f.NewUnknownCategoryError("hazard_rate_method_id", m, "hazard rate")
	}
}

// Predict runs one component and returns the enriched copy of r. The input
// is never modified.
func (p *Predictor) Predict(r record.Record) (record.Record, error) {
	method, err := p.method(r)
	if err != nil {
		return nil, err
	}
	fam, err := familyFor(r)
	if err != nil {
		return nil, err
	}

	out := r.Clone()
	out["hazard_rate_method_id"] = record.Int(method)
	stress := method == config.MethodPartStress
	if stress {
		out = StressRatios(out)
	}
	if p.cfg.ImputeDefaults {
		out = fam.defaults(out)
	}
	if stress {
		out, err = fam.partStress(out)
	} else {
		out, err = fam.partCount(out)
	}
	if err != nil {
		return nil, err
	}

	if out, err = Adjust(out); err != nil {
		return nil, err
	}
	if dormantEnv, _ := out.IntOr("environment_dormant_id", 0); dormantEnv > 0 {
		if out, err = fam.dormant(out); err != nil {
			return nil, err
		}
	} else {
		out["hazard_rate_dormant"] = record.Float(0)
	}
	if stress {
		out = fam.overstress(out, p.cfg.Derating)
	}
	out = Logistics(out)

	p.logger.Debug("component predicted",
		"hardware_id", hardwareID(r),
		"family", fam.name,
		"method", method,
		"hazard_rate_active", out["hazard_rate_active"])
	return out, nil
}

// PredictAll predicts every component under a fresh run ID. Component
// failures are collected in the report; the returned error is only set when
// ctx is cancelled, in which case the partial report is returned with it.
func (p *Predictor) PredictAll(ctx context.Context, components []record.Record) (*Report, error) {
	rep := &Report{RunID: p.runIDs.Generate()}
	for i, c := range components {
		if err := ctx.Err(); err != nil {
			rep.total()
			return rep, err
		}
		hash, err := record.Hash(c)
		if err != nil {
			rep.Failures = append(rep.Failures, &ComponentError{Index: i, HardwareID: hardwareID(c), Err: err})
			continue
		}
		out, err := p.Predict(c)
		if err != nil {
			rep.Failures = append(rep.Failures, &ComponentError{Index: i, HardwareID: hardwareID(c), Err: err})
			continue
		}
		rep.Results = append(rep.Results, Result{
			Index:      i,
			HardwareID: hardwareID(c),
			InputHash:  hash,
			Record:     out,
		})
	}
	rep.total()

	p.logger.Info("prediction complete",
		"run_id", rep.RunID,
		"components", len(components),
		"failures", len(rep.Failures),
		"hazard_rate_active", rep.HazardRateActive)
	return rep, nil
}

func hardwareID(r record.Record) string {
	id, err := r.String("hardware_id")
	if err != nil {
		return ""
	}
	return id
}
