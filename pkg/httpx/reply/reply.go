package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"estate_price/pkg/contextx"
	"estate_price/pkg/errcodes"
	"estate_price/pkg/logx"
	"estate_price/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const supportIDUnknown = "unsupported"

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error renders err as rest.Error. Invalid arguments are client errors and
// logged as warnings; anything else is an internal error whose details stay
// in the log.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status, defaultCode := classify(err)

	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	if response.Code == "" {
		response.Code = rest.ErrorCode(defaultCode.String())
	}

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("request failed", logx.Error(err))

		response.Message = "internal error, quote the support id"
	} else {
		logger(ctx).Warn("request rejected", logx.Error(err))
	}

	JSON(ctx, w, status, response)
}

func classify(err error) (int, failure.ErrorCode) {
	switch {
	case failure.IsInvalidArgumentError(err):
		return http.StatusBadRequest, errcodes.ValidationError
	case failure.IsNotFoundError(err):
		return http.StatusNotFound, errcodes.NotFound
	default:
		return http.StatusInternalServerError, errcodes.InternalServerError
	}
}

func supportID(ctx context.Context) string {
	if traceID, ok := contextx.TraceIDFromContext(ctx); ok {
		return traceID.String()
	}

	return supportIDUnknown
}
