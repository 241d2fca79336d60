package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"estate_price/pkg/contextx"
)

func TestTraceIDFromContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctx    context.Context
		want   contextx.TraceID
		wantOK bool
	}{
		{"absent", context.Background(), "", false},
		{"empty", contextx.WithTraceID(context.Background(), ""), "", false},
		{"set", contextx.WithTraceID(context.Background(), "cq1s2ab3"), "cq1s2ab3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			got, ok := contextx.TraceIDFromContext(tt.ctx)
			rq.Equal(tt.wantOK, ok)
			rq.Equal(tt.want, got)
		})
	}
}
