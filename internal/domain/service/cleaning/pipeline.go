package cleaning

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"estate_price/internal/domain"
	"estate_price/internal/domain/entity"
	"estate_price/pkg/errcodes"
	"estate_price/pkg/logx"
)

const tracerName = "estate_price/cleaning"

// Pipeline runs stages in order. It is immutable once built and safe for
// concurrent use.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

// Then returns a new pipeline with stages appended.
func (p *Pipeline) Then(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append(slices.Clone(p.stages), stages...)}
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}

	return names
}

func (p *Pipeline) Run(ctx context.Context, f Frame) (Frame, error) {
	tracer := otel.Tracer(tracerName)

	for i, s := range p.stages {
		next, err := runStage(ctx, tracer, i, s, f)
		if err != nil {
			return Frame{}, err
		}

		f = next
	}

	return f, nil
}

// RunRecord runs the pipeline over a single record.
func (p *Pipeline) RunRecord(ctx context.Context, r entity.PropertyRecord) (entity.PropertyRecord, error) {
	out, err := p.Run(ctx, NewFrame(r))
	if err != nil {
		return nil, err
	}

	record, ok := out.Record()
	if !ok {
		return nil, domain.NewError(errcodes.InternalServerError, fmt.Sprintf("pipeline returned %d rows", out.Len()))
	}

	return record, nil
}

func runStage(ctx context.Context, tracer trace.Tracer, i int, s Stage, f Frame) (Frame, error) {
	ctx, span := tracer.Start(ctx, s.Name(), trace.WithAttributes(
		attribute.Int("stage.index", i),
		attribute.Int("frame.rows", f.Len()),
	))
	defer span.End()

	out, err := s.Transform(ctx, f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger(ctx).Debug("stage failed", logx.FieldStage, s.Name(), logx.Error(err))

		return Frame{}, fmt.Errorf("cleaning.%s: %w", s.Name(), err)
	}

	return out, nil
}
