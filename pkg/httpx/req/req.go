package req

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"estate_price/pkg/errcodes"
)

// MaxBodyBytes bounds a request body; a prediction request is well under 1 KiB.
const MaxBodyBytes = 64 << 10

var (
	json     = jsoniter.Config{DisallowUnknownFields: true}.Froze() //nolint:gochecknoglobals // skip
	validate = newValidator()                                    //nolint:gochecknoglobals // skip
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Read decodes a JSON body into dest and validates it. Unknown fields are
// rejected so that a misspelled attribute is not silently replaced by its
// default.
func Read(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(describe(err)),
		)
	}

	return nil
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, len(fieldErrs))

	for i, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fe.Field() + " is required"
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
	}

	return strings.Join(parts, "; ")
}
