package middlewarex_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"estate_price/pkg/contextx"
	"estate_price/pkg/logx"
	"estate_price/pkg/middlewarex"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// withLogger routes the request log into out.
func withLogger(out io.Writer) func(http.Handler) http.Handler {
	log := slog.New(slog.NewJSONHandler(out, nil))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(r.Context(), log)))
		})
	}
}

func newRouter(out io.Writer, opts middlewarex.LogOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(
		withLogger(out),
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(opts),
		middlewarex.ResponseLogging(opts),
	)

	r.Post("/v1/predictions", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"subtype":"HOUSE"`) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"price":312345.5,"features":{}}`))
	})
	r.Get("/v1/options", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"postCodes":["1000","4000"]}`))
	})
	r.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("scorer exploded")
	})

	return r
}

func TestLogging_Prediction(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out syncBuffer

	r := newRouter(&out, middlewarex.LogOptions{
		Masker:     logx.NewSensitiveDataMasker("postCode"),
		MaxLen:     1024,
		QuietPaths: []string{"/v1/options"},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/predictions",
		strings.NewReader(`{"subtype":"HOUSE","postCode":"1000"}`)))

	rq.Equal(http.StatusOK, w.Code)

	logs := out.String()
	rq.Contains(logs, `"price":312345.5`)
	rq.Contains(logs, `\"postCode\":\"[MASKED]\"`)
	rq.Contains(logs, `"response-status":200`)
	rq.Contains(logs, `"path":"/v1/predictions"`)
}

func TestLogging_QuietPath(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out syncBuffer

	r := newRouter(&out, middlewarex.LogOptions{MaxLen: 1024, QuietPaths: []string{"/v1/options"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/options", nil))

	rq.Equal(http.StatusOK, w.Code)
	rq.NotContains(out.String(), "postCodes")
	rq.NotContains(out.String(), `"price"`)
}

func TestLogging_BodyLongerThanLimit(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out syncBuffer

	r := newRouter(&out, middlewarex.LogOptions{MaxLen: 4})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/predictions",
		strings.NewReader(`{"subtype":"HOUSE"}`)))

	// The handler still sees the whole body.
	rq.Equal(http.StatusOK, w.Code)
	rq.Contains(out.String(), `"request-body":"{\"su"`)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"from client", "client-trace"},
		{"generated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = contextx.TraceIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Trace-Id", tt.header)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tt.header != "" {
				rq.Equal(tt.header, seen.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out syncBuffer

	r := newRouter(&out, middlewarex.LogOptions{MaxLen: 1024})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Trace-Id", "trace-42")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.JSONEq(`{"code":"InternalServerError","message":"internal error, quote the support id","supportId":"trace-42"}`,
		w.Body.String())
	rq.Contains(out.String(), "scorer exploded")
}
