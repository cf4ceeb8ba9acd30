package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Postgres error classes surfaced by constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// uniqueReasons resolves unique_violation constraint names. Uniqueness is
// classified ahead of pattern validation: a duplicate rejection is more
// informative to callers than a format rejection.
var uniqueReasons = map[string]FailureReason{
	"users_name_unique":                  UsernameAlreadyExists,
	"chatrooms_name_unique":              ChatroomNameAlreadyExists,
	"chatroom_subscriptions_pkey":        ChatroomSubscriptionIsNotUnique,
	"chatroom_admins_pkey":               ChatroomAdminAlreadyExists,
	"chatroom_bans_pkey":                 ChatroomBanAlreadyExists,
	"security_questions_question_unique": SecurityQuestionIsNotUnique,
	"security_question_answers_pkey":     SecurityQuestionAnswerIsNotUnique,
}

// checkReasons resolves check_violation constraint names.
var checkReasons = map[string]FailureReason{
	"users_name_valid":                UsernameInvalid,
	"users_password_valid":            PasswordInvalid,
	"chatrooms_name_valid":            ChatroomNameFailsValidation,
	"chatroom_messages_content_valid": ChatroomMessageFailsValidation,
}

// fkReasons resolves foreign_key_violation constraint names. A chatroom
// pointing at a missing owner reports the owner as missing; junction rows
// report a generic referential failure.
var fkReasons = map[string]FailureReason{
	"chatrooms_owner_fk": UserDoesNotExist,
}

// classify converts an engine error into a failure reason. It is total:
// every error maps to exactly one reason, defaulting to UnknownError, and
// sql.ErrNoRows maps to the caller's notFound reason. No engine error
// crosses the store boundary.
func classify(err error, notFound FailureReason) FailureReason {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return UnknownError
	}

	switch string(pqErr.Code) {
	case pgUniqueViolation:
		if reason, ok := uniqueReasons[pqErr.Constraint]; ok {
			return reason
		}
	case pgForeignKeyViolation:
		if reason, ok := fkReasons[pqErr.Constraint]; ok {
			return reason
		}
		return ForeignKeyConstraintFailure
	case pgCheckViolation:
		if reason, ok := checkReasons[pqErr.Constraint]; ok {
			return reason
		}
	case pgNotNullViolation:
		return NotProvidedValidFields
	}

	return UnknownError
}
