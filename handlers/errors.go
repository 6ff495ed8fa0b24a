// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/trivia/apperr"
	"github.com/danielhkuo/trivia/middleware"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest parses and presence-checks a JSON body.
// An empty body decodes as {} so that missing fields surface as validation errors.
// Malformed JSON or data after the body is a bad request; well-formed JSON with wrongly typed fields is unprocessable.
func decodeRequest(r *http.Request, v any) error {
	if err := middleware.ParseJSONBody(r, v); err != nil && !errors.Is(err, io.EOF) {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, middleware.ErrTrailingData) {
			return apperr.BadRequest(err, "invalid JSON body")
		}
		return &apperr.Error{Kind: apperr.KindValidation, Msg: "invalid field value", Err: err}
	}

	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				// Drop the leading struct name
				ns := fe.Namespace()
				if i := strings.IndexByte(ns, '.'); i >= 0 {
					ns = ns[i+1:]
				}
				missing = append(missing, ns)
			}
			return apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
		}
		return apperr.Internal(err, "failed to validate request")
	}
	return nil
}

// writeError logs the cause and writes the error envelope for err's kind
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
		"request_id", middleware.RequestID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request rejected", attrs...)
	}

	middleware.ErrorResponse(w, status)
}
