// Package validator decodes and validates JSON request bodies with
// go-playground/validator struct tags. Field names in error maps are the
// json names the client sent.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ghuser/productcatalog/pkg/httpx"
)

// Client-facing messages for a rejected body.
const (
	InvalidJSONMessage      = "Invalid JSON"
	ValidationFailedMessage = "Validation failed"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// "required" accepts "   "; notblank does not.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	if err := v.RegisterValidation("nocontrol", noControl); err != nil {
		panic(fmt.Sprintf("register nocontrol: %v", err))
	}
	return v
}

// noControl rejects strings holding Unicode control characters (category Cc).
func noControl(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}

// tagMessages renders the default message for a failed tag.
var tagMessages = map[string]func(param string) string{
	"required":  func(string) string { return "This field is required" },
	"notblank":  func(string) string { return "Must not be blank" },
	"nocontrol": func(string) string { return "Must not contain control characters" },
	"max":       func(p string) string { return "Maximum length is " + p },
	"min":       func(p string) string { return "Minimum length is " + p },
	"gt":        func(p string) string { return "Must be greater than " + p },
	"gte":       func(p string) string { return "Must be greater than or equal to " + p },
	"lte":       func(p string) string { return "Must be less than or equal to " + p },
}

var (
	overridesMu sync.RWMutex
	overrides   = map[string]string{}
)

// RegisterMessages sets field-specific messages keyed by "<json field>.<tag>",
// e.g. "product_name.required". They take precedence over the defaults.
func RegisterMessages(m map[string]string) {
	overridesMu.Lock()
	defer overridesMu.Unlock()
	for k, v := range m {
		overrides[k] = v
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors maps each failing json field to a message. Errors
// that are not validation errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	overridesMu.RLock()
	msg, ok := overrides[fe.Field()+"."+fe.Tag()]
	overridesMu.RUnlock()
	if ok {
		return msg
	}
	if f, ok := tagMessages[fe.Tag()]; ok {
		return f(fe.Param())
	}
	return fmt.Sprintf("Validation failed on '%s'", fe.Tag())
}

// ValidateRequest decodes the JSON body into T and validates it. On failure
// it writes the 400 response itself and returns ok=false.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, InvalidJSONMessage)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, map[string]any{
			"error":  ValidationFailedMessage,
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
