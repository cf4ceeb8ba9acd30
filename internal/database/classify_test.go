package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tcases := []struct {
		name     string
		err      error
		notFound FailureReason
		expected FailureReason
	}{
		{
			name:     "no rows maps to the caller's not-found reason",
			err:      sql.ErrNoRows,
			notFound: UserDoesNotExist,
			expected: UserDoesNotExist,
		},
		{
			name:     "wrapped no rows still maps to not-found",
			err:      fmt.Errorf("scan user: %w", sql.ErrNoRows),
			notFound: ChatroomDoesNotExist,
			expected: ChatroomDoesNotExist,
		},
		{
			name:     "duplicate username",
			err:      &pq.Error{Code: "23505", Constraint: "users_name_unique"},
			notFound: UserDoesNotExist,
			expected: UsernameAlreadyExists,
		},
		{
			name:     "duplicate chatroom name",
			err:      &pq.Error{Code: "23505", Constraint: "chatrooms_name_unique"},
			notFound: ChatroomDoesNotExist,
			expected: ChatroomNameAlreadyExists,
		},
		{
			name:     "duplicate subscription",
			err:      &pq.Error{Code: "23505", Constraint: "chatroom_subscriptions_pkey"},
			notFound: ChatroomSubscriptionDoesNotExist,
			expected: ChatroomSubscriptionIsNotUnique,
		},
		{
			name:     "duplicate admin",
			err:      &pq.Error{Code: "23505", Constraint: "chatroom_admins_pkey"},
			notFound: ChatroomAdminDoesNotExist,
			expected: ChatroomAdminAlreadyExists,
		},
		{
			name:     "duplicate ban",
			err:      &pq.Error{Code: "23505", Constraint: "chatroom_bans_pkey"},
			notFound: ChatroomBanDoesNotExist,
			expected: ChatroomBanAlreadyExists,
		},
		{
			name:     "duplicate security question",
			err:      &pq.Error{Code: "23505", Constraint: "security_questions_question_unique"},
			notFound: SecurityQuestionDoesNotExist,
			expected: SecurityQuestionIsNotUnique,
		},
		{
			name:     "duplicate security question answer",
			err:      &pq.Error{Code: "23505", Constraint: "security_question_answers_pkey"},
			notFound: SecurityQuestionAnswerDoesNotExist,
			expected: SecurityQuestionAnswerIsNotUnique,
		},
		{
			name:     "username fails pattern check",
			err:      &pq.Error{Code: "23514", Constraint: "users_name_valid"},
			notFound: UserDoesNotExist,
			expected: UsernameInvalid,
		},
		{
			name:     "password fails pattern check",
			err:      &pq.Error{Code: "23514", Constraint: "users_password_valid"},
			notFound: UserDoesNotExist,
			expected: PasswordInvalid,
		},
		{
			name:     "chatroom name fails pattern check",
			err:      &pq.Error{Code: "23514", Constraint: "chatrooms_name_valid"},
			notFound: ChatroomDoesNotExist,
			expected: ChatroomNameFailsValidation,
		},
		{
			name:     "message content fails length check",
			err:      &pq.Error{Code: "23514", Constraint: "chatroom_messages_content_valid"},
			notFound: ChatroomMessageDoesNotExist,
			expected: ChatroomMessageFailsValidation,
		},
		{
			name:     "chatroom owner fk reports missing user",
			err:      &pq.Error{Code: "23503", Constraint: "chatrooms_owner_fk"},
			notFound: ChatroomDoesNotExist,
			expected: UserDoesNotExist,
		},
		{
			name:     "junction fk reports generic referential failure",
			err:      &pq.Error{Code: "23503", Constraint: "chatroom_subscriptions_user_fk"},
			notFound: ChatroomSubscriptionDoesNotExist,
			expected: ForeignKeyConstraintFailure,
		},
		{
			name:     "not null violation",
			err:      &pq.Error{Code: "23502", Column: "name"},
			notFound: UserDoesNotExist,
			expected: NotProvidedValidFields,
		},
		{
			name:     "unrecognized unique constraint",
			err:      &pq.Error{Code: "23505", Constraint: "mystery_unique"},
			notFound: UserDoesNotExist,
			expected: UnknownError,
		},
		{
			name:     "unrecognized check constraint",
			err:      &pq.Error{Code: "23514", Constraint: "mystery_check"},
			notFound: UserDoesNotExist,
			expected: UnknownError,
		},
		{
			name:     "non-postgres error",
			err:      errors.New("connection reset"),
			notFound: UserDoesNotExist,
			expected: UnknownError,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classify(tc.err, tc.notFound))
		})
	}
}

func TestResultEnvelopes(t *testing.T) {
	res := ok(42)
	assert.True(t, res.Success)
	assert.Equal(t, 42, res.Value)
	assert.Empty(t, res.FailureID)

	failed := fail[int](UserDoesNotExist)
	assert.False(t, failed.Success)
	assert.Zero(t, failed.Value)
	assert.Equal(t, UserDoesNotExist, failed.FailureID)

	action := done()
	assert.True(t, action.Success)
	assert.Empty(t, action.FailureID)

	failedAction := failAction(ChatroomDoesNotExist)
	assert.False(t, failedAction.Success)
	assert.Equal(t, ChatroomDoesNotExist, failedAction.FailureID)
}
