package database_test

import (
	"testing"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveChatroomWithAllSubscribers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	member := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)
	require.True(t, db.CreateChatroomSubscription(member.Id, room.Id).Success)

	res := db.RetrieveChatroomWithAllSubscribers(room.Id)
	require.True(t, res.Success, "retrieve subscribers: %s", res.FailureID)
	assert.Equal(t, room.Id, res.Value.Chatroom.Id)
	require.Len(t, res.Value.Users, 2)

	names := []string{res.Value.Users[0].Name, res.Value.Users[1].Name}
	assert.Contains(t, names, owner.Name)
	assert.Contains(t, names, member.Name)
}

func TestRetrieveChatroomWithAllBans_EmptyVsMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	// a room with no bans is a success carrying an empty roster
	empty := db.RetrieveChatroomWithAllBans(room.Id)
	require.True(t, empty.Success)
	assert.Equal(t, room.Id, empty.Value.Chatroom.Id)
	assert.NotNil(t, empty.Value.Users)
	assert.Empty(t, empty.Value.Users)

	missing := db.RetrieveChatroomWithAllBans(999)
	assert.False(t, missing.Success)
	assert.Equal(t, database.ChatroomDoesNotExist, missing.FailureID)
}

func TestRetrieveChatroomWithAllAdmins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	res := db.RetrieveChatroomWithAllAdmins(room.Id)
	require.True(t, res.Success)
	require.Len(t, res.Value.Users, 1, "the owner is the initial admin")
	assert.Equal(t, owner.Id, res.Value.Users[0].Id)
}

func TestRetrieveUserAndAllSubscribedChatrooms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	member := createTestUser(t, db)
	roomOne := createTestChatroom(t, db, owner.Id)
	roomTwo := createTestChatroom(t, db, owner.Id)
	require.True(t, db.CreateChatroomSubscription(member.Id, roomOne.Id).Success)
	require.True(t, db.CreateChatroomSubscription(member.Id, roomTwo.Id).Success)

	res := db.RetrieveUserAndAllSubscribedChatrooms(member.Id)
	require.True(t, res.Success, "retrieve subscribed: %s", res.FailureID)
	assert.Equal(t, member.Id, res.Value.User.Id)
	assert.Len(t, res.Value.Chatrooms, 2)

	missing := db.RetrieveUserAndAllSubscribedChatrooms(999)
	assert.False(t, missing.Success)
	assert.Equal(t, database.UserDoesNotExist, missing.FailureID)
}

func TestRetrieveUserAndAllOwnedChatrooms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	other := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	res := db.RetrieveUserAndAllOwnedChatrooms(owner.Id)
	require.True(t, res.Success)
	require.Len(t, res.Value.Chatrooms, 1)
	assert.Equal(t, room.Name, res.Value.Chatrooms[0].Name)

	none := db.RetrieveUserAndAllOwnedChatrooms(other.Id)
	require.True(t, none.Success)
	assert.Empty(t, none.Value.Chatrooms)
}

func TestRetrieveUserAndAllAdminAndBannedChatrooms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	target := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)
	require.True(t, db.CreateChatroomBan(target.Id, room.Id).Success)

	admin := db.RetrieveUserAndAllAdminChatrooms(owner.Id)
	require.True(t, admin.Success)
	assert.Len(t, admin.Value.Chatrooms, 1)

	banned := db.RetrieveUserAndAllBannedChatrooms(target.Id)
	require.True(t, banned.Success)
	require.Len(t, banned.Value.Chatrooms, 1)
	assert.Equal(t, room.Id, banned.Value.Chatrooms[0].Id)
}

func TestRetrieveUserWithSecurityQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := createTestUser(t, db)

	// no recorded answers yet
	empty := db.RetrieveUserWithSecurityQuestions(user.Id)
	require.True(t, empty.Success)
	assert.Empty(t, empty.Value.Questions)

	question := db.CreateSecurityQuestion("In what city were you born?")
	require.True(t, question.Success)
	answer := db.CreateSecurityQuestionAnswer(database.SecurityQuestionAnswer{
		UserId:             user.Id,
		SecurityQuestionId: question.Value.Id,
		Answer:             "springfield",
	})
	require.True(t, answer.Success)

	res := db.RetrieveUserWithSecurityQuestions(user.Id)
	require.True(t, res.Success, "retrieve questions: %s", res.FailureID)
	assert.Equal(t, user.Id, res.Value.User.Id)
	require.Len(t, res.Value.Questions, 1)
	assert.Equal(t, question.Value.Question, res.Value.Questions[0].Question)

	missing := db.RetrieveUserWithSecurityQuestions(999)
	assert.False(t, missing.Success)
	assert.Equal(t, database.UserDoesNotExist, missing.FailureID)
}
