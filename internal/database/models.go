package database

import "time"

type User struct {
	Id        int
	Name      string
	Password  string
	IsActive  bool
	IsOnline  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Chatroom struct {
	Id        int
	OwnerId   int
	Name      string
	Password  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatroomSubscription struct {
	UserId     int
	ChatroomId int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ChatroomAdmin struct {
	UserId     int
	ChatroomId int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ChatroomBan struct {
	UserId     int
	ChatroomId int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ChatroomMessage struct {
	Id         int
	UserId     int
	ChatroomId int
	Content    string
	Deleted    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SecurityQuestion struct {
	Id       int
	Question string
}

type SecurityQuestionAnswer struct {
	UserId             int
	SecurityQuestionId int
	Answer             string
}

type CreateUserParams struct {
	Name     string
	Password string
}

// SecurityQuestionAnswerInput is a recovery answer supplied at user
// creation, before the user id is known.
type SecurityQuestionAnswerInput struct {
	SecurityQuestionId int
	Answer             string
}

// CreatedUser is the value returned by CreateUser: the new row plus any
// recovery answers written in the same transaction.
type CreatedUser struct {
	User    User
	Answers []SecurityQuestionAnswer
}

// UpdateUserParams is a partial-field patch. Nil fields are left untouched.
type UpdateUserParams struct {
	Name     *string
	Password *string
	IsActive *bool
	IsOnline *bool
}

type CreateChatroomParams struct {
	OwnerId  int
	Name     string
	Password *string
}

// CreatedChatroom is the value returned by CreateChatroom: the room plus
// the owner's subscription and admin rows written in the same transaction.
type CreatedChatroom struct {
	Chatroom     Chatroom
	Subscription ChatroomSubscription
	Admin        ChatroomAdmin
}

// UpdateChatroomParams is a partial-field patch. Nil fields are left untouched.
type UpdateChatroomParams struct {
	Name     *string
	Password *string
}

type CreateChatroomMessageParams struct {
	UserId     int
	ChatroomId int
	Content    string
}

// UpdateChatroomMessageParams is a partial-field patch. Nil fields are left
// untouched.
type UpdateChatroomMessageParams struct {
	Content *string
	Deleted *bool
}

// UserSummary is the subscriber/admin/ban view of a user, without
// credentials or timestamps.
type UserSummary struct {
	Id       int
	Name     string
	IsActive bool
	IsOnline bool
}

type ChatroomSummary struct {
	Id   int
	Name string
}

type ChatroomWithUsers struct {
	Chatroom Chatroom
	Users    []UserSummary
}

type UserWithChatrooms struct {
	User      User
	Chatrooms []ChatroomSummary
}

type UserWithSecurityQuestions struct {
	User      User
	Questions []SecurityQuestion
}
