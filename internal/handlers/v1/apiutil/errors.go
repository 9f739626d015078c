// Package apiutil holds helpers shared by the v1 handlers.
package apiutil

import (
	"errors"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

// ToHumaError maps a service error to an HTTP error. message is used for
// internal failures so store details are not sent to the client.
func ToHumaError(err error, message string) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return huma.NewError(http.StatusBadRequest, "validation failed", fieldDetails(apperrors.FieldsOf(err))...)
	case apperrors.KindInvalidArgument:
		return huma.NewError(http.StatusBadRequest, messageOf(err))
	case apperrors.KindNotFound:
		return huma.NewError(http.StatusNotFound, messageOf(err))
	case apperrors.KindUnauthorized:
		return huma.NewError(http.StatusUnauthorized, messageOf(err))
	case apperrors.KindAlreadyExists:
		return huma.NewError(http.StatusConflict, messageOf(err))
	default:
		return huma.NewError(http.StatusInternalServerError, message)
	}
}

func messageOf(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

func fieldDetails(fields map[string][]string) []error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]error, 0, len(fields))
	for _, name := range names {
		for _, msg := range fields[name] {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + name,
				Message:  msg,
			})
		}
	}
	return details
}
