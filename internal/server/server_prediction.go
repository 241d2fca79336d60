package server

import (
	"context"
	"fmt"
	"net/http"

	"estate_price/internal/domain/entity"
	"estate_price/internal/domain/value"
	"estate_price/pkg/httpx/reply"
	"estate_price/pkg/httpx/req"
	"estate_price/pkg/rest"
)

type estimator interface {
	Estimate(ctx context.Context, overrides map[string]any) (entity.Prediction, error)
}

type PredictionServer struct {
	estimator estimator
	options   rest.Options
}

func NewPredictionServer(estimator estimator, prices value.PostalPrices) PredictionServer {
	return PredictionServer{
		estimator: estimator,
		options:   newRESTOptions(prices),
	}
}

func (s PredictionServer) postV1Predictions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictionRequest

	if err := req.Read(w, r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prediction, err := s.estimator.Estimate(ctx, newDomainOverrides(request))
	if err != nil {
		return newTransportError(fmt.Errorf("estimator.Estimate: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(prediction))

	return nil
}

func (s PredictionServer) getV1Options(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, s.options)

	return nil
}
