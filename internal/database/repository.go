package database

// ParlorRepository is the operation contract the routing layer consumes.
type ParlorRepository interface {
	Ping() error

	CreateUser(params CreateUserParams, answers []SecurityQuestionAnswerInput) Result[CreatedUser]
	RetrieveUserById(id int) Result[User]
	RetrieveUserByName(name string) Result[User]
	UpdateUser(id int, params UpdateUserParams) Result[User]
	DeleteUser(id int) ActionResult

	CreateChatroom(params CreateChatroomParams) Result[CreatedChatroom]
	RetrieveChatroomById(id int) Result[Chatroom]
	RetrieveChatroomByName(name string) Result[Chatroom]
	RetrieveAllChatrooms() Result[[]Chatroom]
	UpdateChatroom(id int, params UpdateChatroomParams) Result[Chatroom]
	DeleteChatroomById(id int) ActionResult

	CreateChatroomSubscription(userId, chatroomId int) Result[ChatroomSubscription]
	RetrieveChatroomSubscriptionsByChatroomId(chatroomId int) Result[[]ChatroomSubscription]
	RetrieveChatroomSubscriptionsByUserId(userId int) Result[[]ChatroomSubscription]
	VerifyChatroomSubscription(userId, chatroomId int) ActionResult
	DeleteChatroomSubscription(userId, chatroomId int) ActionResult

	CreateChatroomAdmin(userId, chatroomId int) Result[ChatroomAdmin]
	RetrieveChatroomAdminsByChatroomId(chatroomId int) Result[[]ChatroomAdmin]
	RetrieveChatroomAdminsByUserId(userId int) Result[[]ChatroomAdmin]
	DeleteChatroomAdmin(userId, chatroomId int) ActionResult

	CreateChatroomBan(userId, chatroomId int) Result[ChatroomBan]
	RetrieveChatroomBansByChatroomId(chatroomId int) Result[[]ChatroomBan]
	RetrieveChatroomBansByUserId(userId int) Result[[]ChatroomBan]
	DeleteChatroomBan(userId, chatroomId int) ActionResult

	CreateChatroomMessage(params CreateChatroomMessageParams) Result[ChatroomMessage]
	RetrieveChatroomMessage(id int) Result[ChatroomMessage]
	RetrieveAllChatroomMessages(chatroomId int) Result[[]ChatroomMessage]
	UpdateChatroomMessage(id int, params UpdateChatroomMessageParams) Result[ChatroomMessage]
	DeleteChatroomMessage(id int) ActionResult

	CreateSecurityQuestion(question string) Result[SecurityQuestion]
	RetrieveSecurityQuestionById(id int) Result[SecurityQuestion]
	RetrieveAllSecurityQuestions() Result[[]SecurityQuestion]

	CreateSecurityQuestionAnswer(answer SecurityQuestionAnswer) Result[SecurityQuestionAnswer]
	RetrieveSecurityQuestionAnswerByIds(userId, securityQuestionId int) Result[SecurityQuestionAnswer]
	RetrieveAllSecurityQuestionAnswersByUserId(userId int) Result[[]SecurityQuestionAnswer]
	DeleteSecurityQuestionAnswerByIds(userId, securityQuestionId int) ActionResult

	RetrieveChatroomWithAllSubscribers(chatroomId int) Result[ChatroomWithUsers]
	RetrieveChatroomWithAllAdmins(chatroomId int) Result[ChatroomWithUsers]
	RetrieveChatroomWithAllBans(chatroomId int) Result[ChatroomWithUsers]
	RetrieveUserAndAllSubscribedChatrooms(userId int) Result[UserWithChatrooms]
	RetrieveUserAndAllOwnedChatrooms(userId int) Result[UserWithChatrooms]
	RetrieveUserAndAllAdminChatrooms(userId int) Result[UserWithChatrooms]
	RetrieveUserAndAllBannedChatrooms(userId int) Result[UserWithChatrooms]
	RetrieveUserWithSecurityQuestions(userId int) Result[UserWithSecurityQuestions]
}
