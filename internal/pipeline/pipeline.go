package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/trendlab/internal/store"
	"github.com/roach88/trendlab/internal/trend"
)

// Store is the persistence surface the pipeline depends on.
// *store.Store satisfies it.
type Store interface {
	AppendSamples(ctx context.Context, entries []store.SampleEntry) error
	AllSampleValues(ctx context.Context) ([]float64, error)
	ReadSamples(ctx context.Context) ([]store.Sample, error)
	AppendFitRecord(ctx context.Context, r2, mae, mse float64) (store.FitRecord, error)
	LatestFitRecord(ctx context.Context) (store.FitRecord, bool, error)
	FitHistory(ctx context.Context) ([]store.FitRecord, error)
	ListTableNames(ctx context.Context) ([]string, error)
}

// FitResult is the outcome of one fit cycle.
type FitResult struct {
	trend.Metrics

	// CycleID correlates log lines of one cycle.
	CycleID string `json:"cycle_id"`

	// RecordID is the id of the fit record persisted for this cycle.
	RecordID int64 `json:"record_id"`

	Model     trend.Model `json:"-"`
	Observed  []float64   `json:"observed"`
	Predicted []float64   `json:"predicted"`
}

// Pipeline orchestrates Store -> Fit -> Score -> Store.
type Pipeline struct {
	store   Store
	logger  *slog.Logger
	cycleID func() string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCycleIDs overrides the fit-cycle id generator (for testing).
func WithCycleIDs(gen func() string) Option {
	return func(p *Pipeline) {
		if gen != nil {
			p.cycleID = gen
		}
	}
}

// New creates a pipeline over st.
func New(st Store, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cycleID: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SubmitSamples stores entries. Store errors are returned unchanged.
// Submitting does not trigger a refit.
func (p *Pipeline) SubmitSamples(ctx context.Context, entries []store.SampleEntry) error {
	if err := p.store.AppendSamples(ctx, entries); err != nil {
		return err
	}
	p.logger.Info("samples submitted", "count", len(entries))
	return nil
}

// RunFitCycle loads every sample, fits the trend, scores it, and appends the
// score to the fit history.
//
// The cycle is not transactional: if persisting the score fails, the fit was
// computed but not recorded and the caller must run the cycle again.
func (p *Pipeline) RunFitCycle(ctx context.Context) (FitResult, error) {
	cycle := p.cycleID()
	log := p.logger.With("cycle", cycle)

	observed, err := p.store.AllSampleValues(ctx)
	if err != nil {
		return FitResult{}, err
	}
	log.Debug("fit cycle started", "samples", len(observed))

	model, err := trend.FitLine(observed)
	if err != nil {
		return FitResult{}, err
	}
	predicted := model.Predict(len(observed))

	metrics, err := trend.Score(observed, predicted)
	if err != nil {
		return FitResult{}, err
	}

	rec, err := p.store.AppendFitRecord(ctx, metrics.R2, metrics.MAE, metrics.MSE)
	if err != nil {
		log.Warn("fit computed but not recorded", "error", err)
		return FitResult{}, err
	}

	log.Info("fit cycle finished",
		"samples", len(observed),
		"record", rec.ID,
		"r2", metrics.R2,
		"mae", metrics.MAE,
		"mse", metrics.MSE,
	)

	return FitResult{
		Metrics:   metrics,
		CycleID:   cycle,
		RecordID:  rec.ID,
		Model:     model,
		Observed:  observed,
		Predicted: predicted,
	}, nil
}

// CurrentMetrics returns the most recent fit record's metrics.
// ok is false when no fit has ever been run.
func (p *Pipeline) CurrentMetrics(ctx context.Context) (m trend.Metrics, ok bool, err error) {
	rec, ok, err := p.store.LatestFitRecord(ctx)
	if err != nil || !ok {
		return trend.Metrics{}, false, err
	}
	return recordMetrics(rec), true, nil
}

// History returns every recorded fit, oldest first.
func (p *Pipeline) History(ctx context.Context) ([]store.FitRecord, error) {
	return p.store.FitHistory(ctx)
}

// Samples returns every stored sample, oldest first.
func (p *Pipeline) Samples(ctx context.Context) ([]store.Sample, error) {
	return p.store.ReadSamples(ctx)
}

// SchemaSummary returns the names of the tables in the store's schema.
func (p *Pipeline) SchemaSummary(ctx context.Context) ([]string, error) {
	return p.store.ListTableNames(ctx)
}

func recordMetrics(rec store.FitRecord) trend.Metrics {
	return trend.Metrics{R2: rec.R2, MAE: rec.MAE, MSE: rec.MSE}
}
