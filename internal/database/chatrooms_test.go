package database_test

import (
	"testing"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChatroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)

	res := db.CreateChatroom(database.CreateChatroomParams{
		OwnerId: owner.Id,
		Name:    "general",
	})
	require.True(t, res.Success, "create chatroom: %s", res.FailureID)
	assert.NotZero(t, res.Value.Chatroom.Id)
	assert.Equal(t, owner.Id, res.Value.Chatroom.OwnerId)
	assert.Nil(t, res.Value.Chatroom.Password)

	// the owner is subscribed and an admin from the same transaction
	assert.Equal(t, owner.Id, res.Value.Subscription.UserId)
	assert.Equal(t, res.Value.Chatroom.Id, res.Value.Subscription.ChatroomId)
	assert.Equal(t, owner.Id, res.Value.Admin.UserId)
	assert.Equal(t, res.Value.Chatroom.Id, res.Value.Admin.ChatroomId)

	verify := db.VerifyChatroomSubscription(owner.Id, res.Value.Chatroom.Id)
	assert.True(t, verify.Success)
}

func TestCreateChatroom_MissingOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)

	res := db.CreateChatroom(database.CreateChatroomParams{
		OwnerId: 999,
		Name:    "general",
	})
	assert.False(t, res.Success)
	assert.Equal(t, database.UserDoesNotExist, res.FailureID)
}

func TestCreateChatroom_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)

	params := database.CreateChatroomParams{OwnerId: owner.Id, Name: "general"}
	require.True(t, db.CreateChatroom(params).Success)

	res := db.CreateChatroom(params)
	assert.False(t, res.Success)
	assert.Equal(t, database.ChatroomNameAlreadyExists, res.FailureID)
}

func TestCreateChatroom_InvalidName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)

	res := db.CreateChatroom(database.CreateChatroomParams{
		OwnerId: owner.Id,
		Name:    "ab",
	})
	assert.False(t, res.Success)
	assert.Equal(t, database.ChatroomNameFailsValidation, res.FailureID)
}

func TestRetrieveChatroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	byId := db.RetrieveChatroomById(room.Id)
	require.True(t, byId.Success)
	assert.Equal(t, room.Name, byId.Value.Name)

	byName := db.RetrieveChatroomByName(room.Name)
	require.True(t, byName.Success)
	assert.Equal(t, room.Id, byName.Value.Id)

	missing := db.RetrieveChatroomById(999)
	assert.False(t, missing.Success)
	assert.Equal(t, database.ChatroomDoesNotExist, missing.FailureID)
}

func TestRetrieveAllChatrooms(t *testing.T) {
	db := testutil.SetupTestDB(t)

	empty := db.RetrieveAllChatrooms()
	require.True(t, empty.Success)
	assert.Empty(t, empty.Value)

	owner := createTestUser(t, db)
	createTestChatroom(t, db, owner.Id)
	createTestChatroom(t, db, owner.Id)

	res := db.RetrieveAllChatrooms()
	require.True(t, res.Success)
	assert.Len(t, res.Value, 2)
}

func TestUpdateChatroom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	name := "renamed-room"
	res := db.UpdateChatroom(room.Id, database.UpdateChatroomParams{Name: &name})
	require.True(t, res.Success, "update chatroom: %s", res.FailureID)
	assert.Equal(t, "renamed-room", res.Value.Name)

	empty := db.UpdateChatroom(room.Id, database.UpdateChatroomParams{})
	assert.False(t, empty.Success)
	assert.Equal(t, database.NotProvidedValidFields, empty.FailureID)

	missing := db.UpdateChatroom(999, database.UpdateChatroomParams{Name: &name})
	assert.False(t, missing.Success)
	assert.Equal(t, database.ChatroomDoesNotExist, missing.FailureID)
}

func TestDeleteChatroom_Cascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := createTestUser(t, db)
	member := createTestUser(t, db)
	room := createTestChatroom(t, db, owner.Id)

	require.True(t, db.CreateChatroomSubscription(member.Id, room.Id).Success)
	msg := db.CreateChatroomMessage(database.CreateChatroomMessageParams{
		UserId:     member.Id,
		ChatroomId: room.Id,
		Content:    "hello",
	})
	require.True(t, msg.Success)

	res := db.DeleteChatroomById(room.Id)
	require.True(t, res.Success, "delete chatroom: %s", res.FailureID)

	lookup := db.RetrieveChatroomById(room.Id)
	assert.False(t, lookup.Success)

	// dependent rows go with the room
	msgLookup := db.RetrieveChatroomMessage(msg.Value.Id)
	assert.False(t, msgLookup.Success)
	assert.Equal(t, database.ChatroomMessageDoesNotExist, msgLookup.FailureID)

	subs := db.RetrieveChatroomSubscriptionsByUserId(member.Id)
	require.True(t, subs.Success)
	assert.Empty(t, subs.Value)
}

func TestDeleteChatroom_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	res := db.DeleteChatroomById(999)
	assert.False(t, res.Success)
	assert.Equal(t, database.ChatroomDoesNotExist, res.FailureID)
}
