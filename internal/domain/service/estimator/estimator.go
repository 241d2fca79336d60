package estimator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/service/cleaning"
	"estate_price/internal/domain/service/features"
	"estate_price/pkg/logx"
)

const tracerName = "estate_price/estimator"

// Scorer is a trained regression model.
type Scorer interface {
	Predict(features []float64) (float64, error)
}

// Observer receives the outcome of every estimation.
type Observer interface {
	ObservePrediction(d time.Duration, price float64, outcome string)
}

type Estimator struct {
	pipeline  *cleaning.Pipeline
	assembler *features.Assembler
	scorer    Scorer
	observer  Observer
}

func NewEstimator(
	pipeline *cleaning.Pipeline,
	assembler *features.Assembler,
	scorer Scorer,
) *Estimator {
	return &Estimator{
		pipeline:  pipeline,
		assembler: assembler,
		scorer:    scorer,
		observer:  nopObserver{},
	}
}

func (e *Estimator) WithObserver(o Observer) *Estimator {
	e.observer = o
	return e
}

// Estimate fills the defaults for every attribute missing from overrides,
// cleans the record and prices it.
func (e *Estimator) Estimate(ctx context.Context, overrides map[string]any) (entity.Prediction, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "estimator.Estimate")
	defer span.End()

	start := time.Now()

	prediction, err := e.estimate(ctx, overrides)

	e.observer.ObservePrediction(time.Since(start), prediction.Price, outcome(err))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return entity.Prediction{}, err
	}

	span.SetAttributes(attribute.Float64("prediction.price", prediction.Price))

	logger(ctx).Debug("price estimated", logx.FieldPrice, prediction.Price)

	return prediction, nil
}

func (e *Estimator) estimate(ctx context.Context, overrides map[string]any) (entity.Prediction, error) {
	record, err := e.pipeline.RunRecord(ctx, entity.NewPropertyRecord(overrides))
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("estimator.Estimate: %w", err)
	}

	vector, err := e.assembler.Assemble(record)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("estimator.Estimate: %w", err)
	}

	price, err := Score(e.scorer, vector)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("estimator.Estimate: %w", err)
	}

	return entity.Prediction{
		Price:    price,
		Features: vector,
		Names:    e.assembler.Names(),
	}, nil
}

// Score calls s once. A failed call or a non-finite price is a ScorerFailure.
func Score(s Scorer, vector entity.FeatureVector) (float64, error) {
	price, err := s.Predict(vector)
	if err != nil {
		return 0, domain.ScorerFailure(err)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, domain.ScorerFailure(fmt.Errorf("non-finite price %v", price))
	}

	return price, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, domain.ErrScorerFailure):
		return "scorer_failure"
	default:
		return "error"
	}
}

type nopObserver struct{}

func (nopObserver) ObservePrediction(time.Duration, float64, string) {}
