package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/parlorchat/go-parlor/internal/database"
)

type ApiError struct {
	StatusCode int                    `json:"status_code"`
	Message    string                 `json:"message"`
	FailureID  database.FailureReason `json:"failure_id,omitempty"`
	Err        error                  `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func lower(s string) string {
	return strings.ToLower(s)
}

func NewBadRequestError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    lower(http.StatusText(http.StatusBadRequest)),
	}
}

func NewNotFoundError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusNotFound,
		Message:    lower(http.StatusText(http.StatusNotFound)),
	}
}

func NewInternalServerError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    lower(http.StatusText(http.StatusInternalServerError)),
		Err:        err,
	}
}

func NewUnauthorizedError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusUnauthorized,
		Message:    lower(http.StatusText(http.StatusUnauthorized)),
	}
}

func NewForbiddenError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusForbidden,
		Message:    lower(http.StatusText(http.StatusForbidden)),
	}
}

func NewMethodNotAllowedError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusMethodNotAllowed,
		Message:    lower(http.StatusText(http.StatusMethodNotAllowed)),
	}
}

// NewFailureError maps a store failure reason onto an HTTP error carrying
// the reason for the frontend to branch on.
func NewFailureError(reason database.FailureReason) *ApiError {
	var statusCode int
	switch reason {
	case database.UserDoesNotExist,
		database.ChatroomDoesNotExist,
		database.ChatroomSubscriptionDoesNotExist,
		database.ChatroomAdminDoesNotExist,
		database.ChatroomBanDoesNotExist,
		database.ChatroomMessageDoesNotExist,
		database.SecurityQuestionDoesNotExist,
		database.SecurityQuestionAnswerDoesNotExist:
		statusCode = http.StatusNotFound
	case database.UsernameAlreadyExists,
		database.ChatroomNameAlreadyExists,
		database.ChatroomSubscriptionIsNotUnique,
		database.ChatroomAdminAlreadyExists,
		database.ChatroomBanAlreadyExists,
		database.SecurityQuestionIsNotUnique,
		database.SecurityQuestionAnswerIsNotUnique:
		statusCode = http.StatusConflict
	case database.UsernameInvalid,
		database.PasswordInvalid,
		database.ChatroomNameFailsValidation,
		database.ChatroomMessageFailsValidation,
		database.NotProvidedValidFields,
		database.ForeignKeyConstraintFailure:
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	return &ApiError{
		StatusCode: statusCode,
		Message:    lower(http.StatusText(statusCode)),
		FailureID:  reason,
	}
}
