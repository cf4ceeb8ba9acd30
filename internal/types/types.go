package types

import (
	"time"
)

type User struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	IsOnline  bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type Chatroom struct {
	Id        int       `json:"id"`
	OwnerId   int       `json:"owner_id"`
	Name      string    `json:"name"`
	Protected bool      `json:"protected"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type ChatroomMember struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	IsOnline bool   `json:"is_online"`
}

type ChatroomSummary struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Membership struct {
	UserId     int       `json:"user_id"`
	ChatroomId int       `json:"chatroom_id"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type Message struct {
	Id         int       `json:"id"`
	UserId     int       `json:"user_id"`
	ChatroomId int       `json:"chatroom_id"`
	Content    string    `json:"content"`
	Deleted    bool      `json:"deleted"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type SecurityQuestion struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
}
