package validator

import (
	stdbase64 "encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"nomad/shared/base64"
	"nomad/shared/constant"
	"nomad/shared/failure"
	"nomad/shared/timezone"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

var validate *val.Validate

// validImageType checks the media type of a base64 data URI against a space separated list.
func validImageType(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	contentType := base64.GetContentType(value)
	if contentType == constant.Empty {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// validImageSize bounds the decoded size of a base64 data URI, the param is in megabytes.
func validImageSize(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	payload := value
	if idx := strings.Index(value, ","); idx >= 0 {
		payload = value[idx+1:]
	}

	decoded := stdbase64.StdEncoding.DecodedLen(len(payload))

	return float64(decoded) <= maxMB*megabyte
}

// validDateNotPast accepts a YYYY-MM-DD string that is today or later in the app timezone.
func validDateNotPast(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return false
	}

	return !date.Before(timezone.Today())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	custom := map[string]val.Func{
		"mimetypes":   validImageType,
		"maxfilesize": validImageSize,
		"notpast":     validDateNotPast,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// URLParam returns the chi route parameter key once it holds a uuid.
func URLParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)

	if err := validate.Var(value, "required,uuid"); err != nil {
		return constant.Empty, failure.BadRequestFromString(messageFor(err, key)) //nolint:wrapcheck
	}

	return value, nil
}
