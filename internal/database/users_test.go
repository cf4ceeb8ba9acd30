package database_test

import (
	"fmt"
	"testing"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userSeq int

// createTestUser inserts a user with a unique valid name and returns it.
func createTestUser(t *testing.T, db *database.PgParlorRepository) database.User {
	t.Helper()

	userSeq++
	res := db.CreateUser(database.CreateUserParams{
		Name:     fmt.Sprintf("testuser%d", userSeq),
		Password: "Passw0rd!",
	}, nil)
	require.True(t, res.Success, "create test user: %s", res.FailureID)

	return res.Value.User
}

func createTestChatroom(t *testing.T, db *database.PgParlorRepository, ownerId int) database.Chatroom {
	t.Helper()

	userSeq++
	res := db.CreateChatroom(database.CreateChatroomParams{
		OwnerId: ownerId,
		Name:    fmt.Sprintf("testroom%d", userSeq),
	})
	require.True(t, res.Success, "create test chatroom: %s", res.FailureID)

	return res.Value.Chatroom
}

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)

	res := db.CreateUser(database.CreateUserParams{
		Name:     "alice",
		Password: "Passw0rd!",
	}, nil)
	require.True(t, res.Success)
	assert.NotZero(t, res.Value.User.Id)
	assert.Equal(t, "alice", res.Value.User.Name)
	assert.True(t, res.Value.User.IsActive)
	assert.True(t, res.Value.User.IsOnline)
	assert.False(t, res.Value.User.CreatedAt.IsZero())
	assert.Empty(t, res.Value.Answers)
}

func TestCreateUser_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)

	params := database.CreateUserParams{Name: "alice", Password: "Passw0rd!"}
	require.True(t, db.CreateUser(params, nil).Success)

	res := db.CreateUser(params, nil)
	assert.False(t, res.Success)
	assert.Equal(t, database.UsernameAlreadyExists, res.FailureID)
}

func TestCreateUser_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)

	tcases := []struct {
		name     string
		params   database.CreateUserParams
		expected database.FailureReason
	}{
		{
			name:     "name too short",
			params:   database.CreateUserParams{Name: "ab", Password: "Passw0rd!"},
			expected: database.UsernameInvalid,
		},
		{
			name:     "name without a letter",
			params:   database.CreateUserParams{Name: "123456", Password: "Passw0rd!"},
			expected: database.UsernameInvalid,
		},
		{
			name:     "password too short",
			params:   database.CreateUserParams{Name: "alice", Password: "Ab!"},
			expected: database.PasswordInvalid,
		},
		{
			name:     "password without special character",
			params:   database.CreateUserParams{Name: "alice", Password: "Password1"},
			expected: database.PasswordInvalid,
		},
		{
			name:     "password without upper case",
			params:   database.CreateUserParams{Name: "alice", Password: "passw0rd!"},
			expected: database.PasswordInvalid,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			res := db.CreateUser(tc.params, nil)
			assert.False(t, res.Success)
			assert.Equal(t, tc.expected, res.FailureID)
		})
	}
}

func TestCreateUser_WithSecurityAnswers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.SeedSecurityQuestions())

	questions := db.RetrieveAllSecurityQuestions()
	require.True(t, questions.Success)
	require.NotEmpty(t, questions.Value)

	res := db.CreateUser(database.CreateUserParams{
		Name:     "alice",
		Password: "Passw0rd!",
	}, []database.SecurityQuestionAnswerInput{
		{SecurityQuestionId: questions.Value[0].Id, Answer: "spot"},
		{SecurityQuestionId: questions.Value[1].Id, Answer: "smith"},
	})
	require.True(t, res.Success, "create user: %s", res.FailureID)
	assert.Len(t, res.Value.Answers, 2)
	for _, answer := range res.Value.Answers {
		assert.Equal(t, res.Value.User.Id, answer.UserId)
	}
}

func TestCreateUser_AnswerForMissingQuestionRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)

	res := db.CreateUser(database.CreateUserParams{
		Name:     "alice",
		Password: "Passw0rd!",
	}, []database.SecurityQuestionAnswerInput{
		{SecurityQuestionId: 999, Answer: "spot"},
	})
	assert.False(t, res.Success)
	assert.Equal(t, database.ForeignKeyConstraintFailure, res.FailureID)

	// the user insert must not survive the failed answer insert
	lookup := db.RetrieveUserByName("alice")
	assert.False(t, lookup.Success)
	assert.Equal(t, database.UserDoesNotExist, lookup.FailureID)
}

func TestRetrieveUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	byId := db.RetrieveUserById(user.Id)
	require.True(t, byId.Success)
	assert.Equal(t, user.Name, byId.Value.Name)

	byName := db.RetrieveUserByName(user.Name)
	require.True(t, byName.Success)
	assert.Equal(t, user.Id, byName.Value.Id)

	missing := db.RetrieveUserById(999)
	assert.False(t, missing.Success)
	assert.Equal(t, database.UserDoesNotExist, missing.FailureID)
}

func TestUpdateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	name := "renamed"
	res := db.UpdateUser(user.Id, database.UpdateUserParams{Name: &name})
	require.True(t, res.Success, "update user: %s", res.FailureID)
	assert.Equal(t, "renamed", res.Value.Name)
	assert.True(t, res.Value.UpdatedAt.After(user.UpdatedAt) || res.Value.UpdatedAt.Equal(user.UpdatedAt))
}

func TestUpdateUser_NoFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	res := db.UpdateUser(user.Id, database.UpdateUserParams{})
	assert.False(t, res.Success)
	assert.Equal(t, database.NotProvidedValidFields, res.FailureID)
}

func TestUpdateUser_DeactivateForcesOffline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	online := true
	res := db.UpdateUser(user.Id, database.UpdateUserParams{IsOnline: &online})
	require.True(t, res.Success)
	require.True(t, res.Value.IsOnline)

	inactive := false
	res = db.UpdateUser(user.Id, database.UpdateUserParams{IsActive: &inactive})
	require.True(t, res.Success)
	assert.False(t, res.Value.IsActive)
	assert.False(t, res.Value.IsOnline, "deactivation must force the user offline")
}

func TestUpdateUser_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	name := "renamed"
	res := db.UpdateUser(999, database.UpdateUserParams{Name: &name})
	assert.False(t, res.Success)
	assert.Equal(t, database.UserDoesNotExist, res.FailureID)
}

func TestDeleteUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	res := db.DeleteUser(user.Id)
	assert.True(t, res.Success)

	lookup := db.RetrieveUserById(user.Id)
	assert.False(t, lookup.Success)

	again := db.DeleteUser(user.Id)
	assert.False(t, again.Success)
	assert.Equal(t, database.UserDoesNotExist, again.FailureID)
}
