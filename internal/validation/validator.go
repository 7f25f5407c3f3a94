// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

// Package validation wraps a singleton go-playground/validator v10 instance
// with the custom rules of the screening data model and translation of
// failures to the VALIDATION_ERROR API format.
//
// Field names in errors are the JSON names, so clients see the keys they
// sent:
//
//	type selectRequest struct {
//	    SampleID string `json:"sample_id" validate:"required,max=256"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondAPIError(w, http.StatusBadRequest, verr.ToAPIError())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/microscopium-browser/internal/models"
)

// CodeValidationError is the API error code for rejected input.
const CodeValidationError = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError lists every rule a value failed, in field order.
type RequestValidationError struct {
	Fields []FieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return strings.Join(parts, "; ")
}

// ToAPIError renders the failures for an error response. A single failure
// keeps its plain message.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	apiErr := &models.APIError{Code: CodeValidationError, Message: ve.Error()}
	if len(ve.Fields) == 1 {
		apiErr.Message = ve.Fields[0].Message
	}
	if len(ve.Fields) > 0 {
		apiErr.Details = map[string]interface{}{"fields": ve.Fields}
	}
	return apiErr
}

// GetValidator returns the singleton validator instance. It is safe for
// concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails for empty tags or nil functions.
		_ = validate.RegisterValidation("platerow", validatePlateRow)
		_ = validate.RegisterValidation("identifier", validateIdentifier)
	})
	return validate
}

// ValidateStruct runs the validate tags of s. It returns nil when s is
// valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{Fields: []FieldError{{Field: "body", Tag: "struct", Message: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		}
	}
	return out
}

// jsonFieldName reports fields by their JSON key.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

var (
	plateRowPattern   = regexp.MustCompile(`^[A-Z]{1,2}$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)
)

// validatePlateRow accepts well plate row labels: A to Z, then AA to ZZ for
// 1536-well plates.
func validatePlateRow(fl validator.FieldLevel) bool {
	return plateRowPattern.MatchString(fl.Field().String())
}

// validateIdentifier accepts screen and sample ids.
func validateIdentifier(fl validator.FieldLevel) bool {
	return identifierPattern.MatchString(fl.Field().String())
}

// messages renders a failed tag; the arguments are the field name and the
// tag parameter.
var messages = map[string]func(field, param string) string{
	"required": func(f, _ string) string { return f + " is required" },
	"platerow": func(f, _ string) string { return f + " must be a plate row label (A-Z or AA-ZZ)" },
	"identifier": func(f, _ string) string {
		return f + " must start with a letter or digit and contain only letters, digits, '.', '_', ':' or '-'"
	},
	"oneof": func(f, p string) string { return fmt.Sprintf("%s must be one of: %s", f, p) },
	"gte":   func(f, p string) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
	"lte":   func(f, p string) string { return fmt.Sprintf("%s must be less than or equal to %s", f, p) },
	"gt":    func(f, p string) string { return fmt.Sprintf("%s must be greater than %s", f, p) },
	"lt":    func(f, p string) string { return fmt.Sprintf("%s must be less than %s", f, p) },
}

func message(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()
	if render, ok := messages[tag]; ok {
		return render(field, param)
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
