package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds every JSON request body the API accepts.
const maxBodyBytes = 1 << 20

var validate *val.Validate

// isDate accepts calendar dates written as YYYY-MM-DD.
func isDate(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("date", isDate); err != nil {
		panic(err)
	}
}

// Validate decodes a single JSON object from r into data and validates it. Unknown fields and
// trailing data are rejected.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if decoder.More() {
		return failure.BadRequestFromString("request body must contain a single JSON object") //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
