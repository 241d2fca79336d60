package server

import (
	"errors"
	"fmt"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"estate_price/internal/domain"
	"estate_price/pkg/errcodes"
)

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		invalidArgument bool
		wantCode        failure.ErrorCode
	}{
		{"unknown category", domain.UnknownCategory("subtype", 99), true, errcodes.UnknownCategory},
		{"missing field", domain.MissingField("postCode"), true, errcodes.MissingField},
		{"invalid value", domain.InvalidValue("habitableSurface", 1e300, nil), true, errcodes.InvalidValue},
		{"scorer failure", domain.ScorerFailure(errors.New("boom")), false, ""},
		{"internal app error", domain.NewError(errcodes.InternalServerError, "pipeline returned 0 rows"), false, ""},
		{"plain error", errors.New("boom"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			err := newTransportError(fmt.Errorf("estimator.Estimate: %w", tt.err))
			rq.Equal(tt.invalidArgument, failure.IsInvalidArgumentError(err))

			if tt.invalidArgument {
				rq.Equal(tt.wantCode, failure.Code(err))
			}
		})
	}
}
