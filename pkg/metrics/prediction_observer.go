package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PredictionObserver exports estimation outcomes to Prometheus.
type PredictionObserver struct {
	predictions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	prices      prometheus.Histogram
}

func NewPredictionObserver(reg prometheus.Registerer) *PredictionObserver {
	factory := promauto.With(reg)

	return &PredictionObserver{
		predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_price_predictions_total",
			Help: "Price estimations by outcome",
		}, []string{"outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estate_price_prediction_duration_seconds",
			Help:    "Time spent cleaning, assembling and scoring one record",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), //nolint:mnd // 100µs .. ~1.6s
		}, []string{"outcome"}),
		prices: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "estate_price_predicted_price_euros",
			Help:    "Distribution of successful price estimates",
			Buckets: prometheus.ExponentialBuckets(50_000, 1.5, 12), //nolint:mnd // 50k .. ~4.3M
		}),
	}
}

func (o *PredictionObserver) ObservePrediction(d time.Duration, price float64, outcome string) {
	o.predictions.WithLabelValues(outcome).Inc()
	o.latency.WithLabelValues(outcome).Observe(d.Seconds())

	if outcome == "ok" {
		o.prices.Observe(price)
	}
}
