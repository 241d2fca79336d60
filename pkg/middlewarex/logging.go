package middlewarex

import (
	"bytes"
	"cmp"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/zenazn/goji/web/mutil"

	"estate_price/pkg/logx"
)

// LogOptions configures request and response logging.
type LogOptions struct {
	Masker logx.SensitiveDataMaskerInterface
	// MaxLen caps every logged body.
	MaxLen int
	// QuietPaths are path prefixes whose response bodies are not logged.
	QuietPaths []string
}

func (o LogOptions) clip(b []byte) string {
	if o.MaxLen > 0 && len(b) > o.MaxLen {
		b = b[:o.MaxLen]
	}

	if o.Masker != nil {
		b = o.Masker.Mask(b)
	}

	return string(b)
}

func (o LogOptions) quiet(path string) bool {
	for _, prefix := range o.QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// RequestLogging logs the request body, leaving it readable for the handler.
func RequestLogging(opts LogOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			attrs := []any{slog.Int64(logx.FieldRequestBytes, r.ContentLength)}

			if opts.MaxLen > 0 && r.Body != nil && r.Body != http.NoBody {
				head, err := io.ReadAll(io.LimitReader(r.Body, int64(opts.MaxLen)))
				if err != nil {
					attrs = append(attrs, logx.Error(err))
				}

				r.Body = readCloser{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}

				attrs = append(attrs, slog.String(logx.FieldRequestBody, opts.clip(head)))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ResponseLogging logs status, duration and body. A numeric top-level
// "price" in the body is logged as its own field.
func ResponseLogging(opts LogOptions) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			lw := mutil.WrapWriter(w)

			var buf bytes.Buffer

			lw.Tee(&buf)

			next.ServeHTTP(lw, r)

			// lw.Status() is 0 when the handler never called WriteHeader.
			attrs := []any{
				slog.Int(logx.FieldResponseStatus, cmp.Or(lw.Status(), http.StatusOK)),
				slog.Int(logx.FieldResponseBytes, lw.BytesWritten()),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			}

			if price := jsoniter.Get(buf.Bytes(), "price"); price.ValueType() == jsoniter.NumberValue {
				attrs = append(attrs, slog.Float64(logx.FieldPrice, price.ToFloat64()))
			}

			if !opts.quiet(r.URL.Path) {
				attrs = append(attrs, slog.String(logx.FieldResponseBody, opts.clip(buf.Bytes())))
			}

			logger(ctx).Info(logx.FieldHTTPResponse, attrs...)
		})
	}
}
