package database

import (
	"github.com/stretchr/testify/mock"
)

type MockParlorRepository struct {
	mock.Mock
}

func (m *MockParlorRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockParlorRepository) CreateUser(params CreateUserParams, answers []SecurityQuestionAnswerInput) Result[CreatedUser] {
	args := m.Called(params, answers)
	return args.Get(0).(Result[CreatedUser])
}
func (m *MockParlorRepository) RetrieveUserById(id int) Result[User] {
	args := m.Called(id)
	return args.Get(0).(Result[User])
}
func (m *MockParlorRepository) RetrieveUserByName(name string) Result[User] {
	args := m.Called(name)
	return args.Get(0).(Result[User])
}
func (m *MockParlorRepository) UpdateUser(id int, params UpdateUserParams) Result[User] {
	args := m.Called(id, params)
	return args.Get(0).(Result[User])
}
func (m *MockParlorRepository) DeleteUser(id int) ActionResult {
	args := m.Called(id)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateChatroom(params CreateChatroomParams) Result[CreatedChatroom] {
	args := m.Called(params)
	return args.Get(0).(Result[CreatedChatroom])
}
func (m *MockParlorRepository) RetrieveChatroomById(id int) Result[Chatroom] {
	args := m.Called(id)
	return args.Get(0).(Result[Chatroom])
}
func (m *MockParlorRepository) RetrieveChatroomByName(name string) Result[Chatroom] {
	args := m.Called(name)
	return args.Get(0).(Result[Chatroom])
}
func (m *MockParlorRepository) RetrieveAllChatrooms() Result[[]Chatroom] {
	args := m.Called()
	return args.Get(0).(Result[[]Chatroom])
}
func (m *MockParlorRepository) UpdateChatroom(id int, params UpdateChatroomParams) Result[Chatroom] {
	args := m.Called(id, params)
	return args.Get(0).(Result[Chatroom])
}
func (m *MockParlorRepository) DeleteChatroomById(id int) ActionResult {
	args := m.Called(id)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateChatroomSubscription(userId, chatroomId int) Result[ChatroomSubscription] {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(Result[ChatroomSubscription])
}
func (m *MockParlorRepository) RetrieveChatroomSubscriptionsByChatroomId(chatroomId int) Result[[]ChatroomSubscription] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[[]ChatroomSubscription])
}
func (m *MockParlorRepository) RetrieveChatroomSubscriptionsByUserId(userId int) Result[[]ChatroomSubscription] {
	args := m.Called(userId)
	return args.Get(0).(Result[[]ChatroomSubscription])
}
func (m *MockParlorRepository) VerifyChatroomSubscription(userId, chatroomId int) ActionResult {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(ActionResult)
}
func (m *MockParlorRepository) DeleteChatroomSubscription(userId, chatroomId int) ActionResult {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateChatroomAdmin(userId, chatroomId int) Result[ChatroomAdmin] {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(Result[ChatroomAdmin])
}
func (m *MockParlorRepository) RetrieveChatroomAdminsByChatroomId(chatroomId int) Result[[]ChatroomAdmin] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[[]ChatroomAdmin])
}
func (m *MockParlorRepository) RetrieveChatroomAdminsByUserId(userId int) Result[[]ChatroomAdmin] {
	args := m.Called(userId)
	return args.Get(0).(Result[[]ChatroomAdmin])
}
func (m *MockParlorRepository) DeleteChatroomAdmin(userId, chatroomId int) ActionResult {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateChatroomBan(userId, chatroomId int) Result[ChatroomBan] {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(Result[ChatroomBan])
}
func (m *MockParlorRepository) RetrieveChatroomBansByChatroomId(chatroomId int) Result[[]ChatroomBan] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[[]ChatroomBan])
}
func (m *MockParlorRepository) RetrieveChatroomBansByUserId(userId int) Result[[]ChatroomBan] {
	args := m.Called(userId)
	return args.Get(0).(Result[[]ChatroomBan])
}
func (m *MockParlorRepository) DeleteChatroomBan(userId, chatroomId int) ActionResult {
	args := m.Called(userId, chatroomId)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateChatroomMessage(params CreateChatroomMessageParams) Result[ChatroomMessage] {
	args := m.Called(params)
	return args.Get(0).(Result[ChatroomMessage])
}
func (m *MockParlorRepository) RetrieveChatroomMessage(id int) Result[ChatroomMessage] {
	args := m.Called(id)
	return args.Get(0).(Result[ChatroomMessage])
}
func (m *MockParlorRepository) RetrieveAllChatroomMessages(chatroomId int) Result[[]ChatroomMessage] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[[]ChatroomMessage])
}
func (m *MockParlorRepository) UpdateChatroomMessage(id int, params UpdateChatroomMessageParams) Result[ChatroomMessage] {
	args := m.Called(id, params)
	return args.Get(0).(Result[ChatroomMessage])
}
func (m *MockParlorRepository) DeleteChatroomMessage(id int) ActionResult {
	args := m.Called(id)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) CreateSecurityQuestion(question string) Result[SecurityQuestion] {
	args := m.Called(question)
	return args.Get(0).(Result[SecurityQuestion])
}
func (m *MockParlorRepository) RetrieveSecurityQuestionById(id int) Result[SecurityQuestion] {
	args := m.Called(id)
	return args.Get(0).(Result[SecurityQuestion])
}
func (m *MockParlorRepository) RetrieveAllSecurityQuestions() Result[[]SecurityQuestion] {
	args := m.Called()
	return args.Get(0).(Result[[]SecurityQuestion])
}

func (m *MockParlorRepository) CreateSecurityQuestionAnswer(answer SecurityQuestionAnswer) Result[SecurityQuestionAnswer] {
	args := m.Called(answer)
	return args.Get(0).(Result[SecurityQuestionAnswer])
}
func (m *MockParlorRepository) RetrieveSecurityQuestionAnswerByIds(userId, securityQuestionId int) Result[SecurityQuestionAnswer] {
	args := m.Called(userId, securityQuestionId)
	return args.Get(0).(Result[SecurityQuestionAnswer])
}
func (m *MockParlorRepository) RetrieveAllSecurityQuestionAnswersByUserId(userId int) Result[[]SecurityQuestionAnswer] {
	args := m.Called(userId)
	return args.Get(0).(Result[[]SecurityQuestionAnswer])
}
func (m *MockParlorRepository) DeleteSecurityQuestionAnswerByIds(userId, securityQuestionId int) ActionResult {
	args := m.Called(userId, securityQuestionId)
	return args.Get(0).(ActionResult)
}

func (m *MockParlorRepository) RetrieveChatroomWithAllSubscribers(chatroomId int) Result[ChatroomWithUsers] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[ChatroomWithUsers])
}
func (m *MockParlorRepository) RetrieveChatroomWithAllAdmins(chatroomId int) Result[ChatroomWithUsers] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[ChatroomWithUsers])
}
func (m *MockParlorRepository) RetrieveChatroomWithAllBans(chatroomId int) Result[ChatroomWithUsers] {
	args := m.Called(chatroomId)
	return args.Get(0).(Result[ChatroomWithUsers])
}
func (m *MockParlorRepository) RetrieveUserAndAllSubscribedChatrooms(userId int) Result[UserWithChatrooms] {
	args := m.Called(userId)
	return args.Get(0).(Result[UserWithChatrooms])
}
func (m *MockParlorRepository) RetrieveUserAndAllOwnedChatrooms(userId int) Result[UserWithChatrooms] {
	args := m.Called(userId)
	return args.Get(0).(Result[UserWithChatrooms])
}
func (m *MockParlorRepository) RetrieveUserAndAllAdminChatrooms(userId int) Result[UserWithChatrooms] {
	args := m.Called(userId)
	return args.Get(0).(Result[UserWithChatrooms])
}
func (m *MockParlorRepository) RetrieveUserAndAllBannedChatrooms(userId int) Result[UserWithChatrooms] {
	args := m.Called(userId)
	return args.Get(0).(Result[UserWithChatrooms])
}
func (m *MockParlorRepository) RetrieveUserWithSecurityQuestions(userId int) Result[UserWithSecurityQuestions] {
	args := m.Called(userId)
	return args.Get(0).(Result[UserWithSecurityQuestions])
}
