package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/calendar"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/generation"
	"github.com/padsala/padsala-api/internal/service"
	"github.com/padsala/padsala-api/internal/service/auth"
	"github.com/padsala/padsala-api/internal/store"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// badInputErrors are client mistakes. Each message is safe to return as is.
var badInputErrors = []error{
	domain.ErrValidation,
	domain.ErrInvalidFormat,
	domain.ErrInvalidID,
	domain.ErrInvalidMastery,
	domain.ErrEmptyScheduleName,
	domain.ErrScheduleNameTooLong,
	domain.ErrEmptySchedulePlan,
	domain.ErrEmptySessionSubject,
	domain.ErrEmptySessionTopic,
	domain.ErrInvalidDuration,
	domain.ErrInvalidFocusScore,
	domain.ErrNegativeCounter,
	domain.ErrEmptyEmail,
	domain.ErrInvalidEmail,
	domain.ErrEmptyPassword,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordTooLong,
	studyplan.ErrTimeFormat,
	studyplan.ErrNoExams,
	studyplan.ErrInvalidOption,
	studyplan.ErrHorizonTooLong,
	calendar.ErrDateFormat,
	service.ErrEmptySubject,
	shared.ErrEmptyBody,
	store.ErrInvalidEntity,
}

func isBadInput(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	for _, target := range badInputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case isBadInput(err):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Internal
// failures never leak their text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrScheduleNotFound):
		return "Schedule not found"
	case errors.Is(err, store.ErrSubjectNotFound):
		return "Subject not found"
	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case store.IsDuplicateError(err):
		return "Resource already exists"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Topic generation is unavailable"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return SanitizeValidationError(err)
	}

	// Typed planner and domain errors describe the request field at fault.
	var fielded interface {
		error
		Field() string
	}
	if errors.As(err, &fielded) {
		return fielded.Error()
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var de *calendar.DateFormatError
	if errors.As(err, &de) {
		return de.Error()
	}
	for _, target := range badInputErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return unexpectedErrorMessage
}

// ErrorField names the request field err refers to, or "".
func ErrorField(err error) string {
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldPath(verrs[0])
	}

	var fielded interface{ Field() string }
	if errors.As(err, &fielded) {
		return fielded.Field()
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	if errors.Is(err, calendar.ErrDateFormat) {
		return "date"
	}
	return ""
}

// fieldPath drops the root struct from a validator namespace, so
// "GenerateScheduleRequest.exams[0].date" becomes "exams[0].date".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// SanitizeValidationError turns validator output into a short message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fieldPath(fe), getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	case "uuid":
		return "invalid ID"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err. fallbackMsg replaces the
// generic message on 5xx responses when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError && fallbackMsg != "" {
		msg = fallbackMsg
	}

	opts := []shared.ResponseOption{shared.WithField(ErrorField(err))}
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err, opts...)
}
