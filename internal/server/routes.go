package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"estate_price/pkg/httpx/reply"
)

const (
	PathPredictions = "/v1/predictions"
	// PathOptions replies with the full postal code list.
	PathOptions = "/v1/options"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Post(PathPredictions, handler(s.postV1Predictions))
	r.Get(PathOptions, handler(s.getV1Options))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
