package metrics_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"estate_price/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	metrics.NewPredictionObserver(reg).ObservePrediction(time.Millisecond, 250_000, "ok")

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		wantBody      string
	}{
		{
			name:          "Metrics handler",
			listenAddress: ":10010",
			endpoint:      "http://:10010/metrics",
			statusCode:    http.StatusOK,
			wantBody:      "estate_price_predictions_total",
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10020",
			endpoint:      "http://:10020/invalid",
			statusCode:    http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			prometheusServer := metrics.NewPrometheusServer(tc.listenAddress).WithGatherer(reg)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return prometheusServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			body, err := io.ReadAll(resp.Body)
			rq.NoError(err)
			resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Contains(string(body), tc.wantBody)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}
