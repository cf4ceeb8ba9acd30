package database

import (
	"database/sql"
	"fmt"
)

// Composite reads assemble an aggregate view in one query. The anchor row
// arrives through a LEFT JOIN, so a missing anchor yields zero rows and a
// DoesNotExist failure, while an anchor with no related rows yields one
// row of NULL join columns and an empty collection.

func (db *PgParlorRepository) RetrieveChatroomWithAllSubscribers(chatroomId int) Result[ChatroomWithUsers] {
	return db.chatroomWithUsers("chatroom_subscriptions", chatroomId)
}

func (db *PgParlorRepository) RetrieveChatroomWithAllAdmins(chatroomId int) Result[ChatroomWithUsers] {
	return db.chatroomWithUsers("chatroom_admins", chatroomId)
}

func (db *PgParlorRepository) RetrieveChatroomWithAllBans(chatroomId int) Result[ChatroomWithUsers] {
	return db.chatroomWithUsers("chatroom_bans", chatroomId)
}

func (db *PgParlorRepository) chatroomWithUsers(junctionTable string, chatroomId int) Result[ChatroomWithUsers] {
	query := fmt.Sprintf(`
		SELECT
			c.id, c.owner_id, c.name, c.password, c.created_at, c.updated_at,
			u.id, u.name, u.is_active, u.is_online
		FROM chatrooms c
		LEFT JOIN %s j ON j.chatroom_id = c.id
		LEFT JOIN users u ON u.id = j.user_id
		WHERE c.id = $1`, junctionTable)

	rows, err := db.conn.Query(query, chatroomId)
	if err != nil {
		return fail[ChatroomWithUsers](UnknownError)
	}
	defer rows.Close()

	var result *ChatroomWithUsers
	for rows.Next() {
		var (
			room     Chatroom
			userId   sql.NullInt64
			userName sql.NullString
			isActive sql.NullBool
			isOnline sql.NullBool
		)

		err := rows.Scan(
			&room.Id,
			&room.OwnerId,
			&room.Name,
			&room.Password,
			&room.CreatedAt,
			&room.UpdatedAt,
			&userId,
			&userName,
			&isActive,
			&isOnline,
		)
		if err != nil {
			return fail[ChatroomWithUsers](UnknownError)
		}

		if result == nil {
			result = &ChatroomWithUsers{
				Chatroom: room,
				Users:    make([]UserSummary, 0),
			}
		}

		if userId.Valid {
			result.Users = append(result.Users, UserSummary{
				Id:       int(userId.Int64),
				Name:     userName.String,
				IsActive: isActive.Bool,
				IsOnline: isOnline.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fail[ChatroomWithUsers](UnknownError)
	}

	if result == nil {
		return fail[ChatroomWithUsers](ChatroomDoesNotExist)
	}

	return ok(*result)
}

func (db *PgParlorRepository) RetrieveUserAndAllSubscribedChatrooms(userId int) Result[UserWithChatrooms] {
	return db.userWithChatrooms(
		"LEFT JOIN chatroom_subscriptions j ON j.user_id = u.id "+
			"LEFT JOIN chatrooms c ON c.id = j.chatroom_id",
		userId,
	)
}

func (db *PgParlorRepository) RetrieveUserAndAllOwnedChatrooms(userId int) Result[UserWithChatrooms] {
	return db.userWithChatrooms("LEFT JOIN chatrooms c ON c.owner_id = u.id", userId)
}

func (db *PgParlorRepository) RetrieveUserAndAllAdminChatrooms(userId int) Result[UserWithChatrooms] {
	return db.userWithChatrooms(
		"LEFT JOIN chatroom_admins j ON j.user_id = u.id "+
			"LEFT JOIN chatrooms c ON c.id = j.chatroom_id",
		userId,
	)
}

func (db *PgParlorRepository) RetrieveUserAndAllBannedChatrooms(userId int) Result[UserWithChatrooms] {
	return db.userWithChatrooms(
		"LEFT JOIN chatroom_bans j ON j.user_id = u.id "+
			"LEFT JOIN chatrooms c ON c.id = j.chatroom_id",
		userId,
	)
}

func (db *PgParlorRepository) userWithChatrooms(joinClause string, userId int) Result[UserWithChatrooms] {
	query := `
		SELECT
			u.id, u.name, u.password, u.is_active, u.is_online, u.created_at, u.updated_at,
			c.id, c.name
		FROM users u ` + joinClause + ` WHERE u.id = $1`

	rows, err := db.conn.Query(query, userId)
	if err != nil {
		return fail[UserWithChatrooms](UnknownError)
	}
	defer rows.Close()

	var result *UserWithChatrooms
	for rows.Next() {
		var (
			user     User
			roomId   sql.NullInt64
			roomName sql.NullString
		)

		err := rows.Scan(
			&user.Id,
			&user.Name,
			&user.Password,
			&user.IsActive,
			&user.IsOnline,
			&user.CreatedAt,
			&user.UpdatedAt,
			&roomId,
			&roomName,
		)
		if err != nil {
			return fail[UserWithChatrooms](UnknownError)
		}

		if result == nil {
			result = &UserWithChatrooms{
				User:      user,
				Chatrooms: make([]ChatroomSummary, 0),
			}
		}

		if roomId.Valid {
			result.Chatrooms = append(result.Chatrooms, ChatroomSummary{
				Id:   int(roomId.Int64),
				Name: roomName.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fail[UserWithChatrooms](UnknownError)
	}

	if result == nil {
		return fail[UserWithChatrooms](UserDoesNotExist)
	}

	return ok(*result)
}

// RetrieveUserWithSecurityQuestions returns the user together with the
// questions it has recorded answers for, without the answers themselves.
func (db *PgParlorRepository) RetrieveUserWithSecurityQuestions(userId int) Result[UserWithSecurityQuestions] {
	query := `
		SELECT
			u.id, u.name, u.password, u.is_active, u.is_online, u.created_at, u.updated_at,
			q.id, q.question
		FROM users u
		LEFT JOIN security_question_answers a ON a.user_id = u.id
		LEFT JOIN security_questions q ON q.id = a.security_question_id
		WHERE u.id = $1`

	rows, err := db.conn.Query(query, userId)
	if err != nil {
		return fail[UserWithSecurityQuestions](UnknownError)
	}
	defer rows.Close()

	var result *UserWithSecurityQuestions
	for rows.Next() {
		var (
			user       User
			questionId sql.NullInt64
			question   sql.NullString
		)

		err := rows.Scan(
			&user.Id,
			&user.Name,
			&user.Password,
			&user.IsActive,
			&user.IsOnline,
			&user.CreatedAt,
			&user.UpdatedAt,
			&questionId,
			&question,
		)
		if err != nil {
			return fail[UserWithSecurityQuestions](UnknownError)
		}

		if result == nil {
			result = &UserWithSecurityQuestions{
				User:      user,
				Questions: make([]SecurityQuestion, 0),
			}
		}

		if questionId.Valid {
			result.Questions = append(result.Questions, SecurityQuestion{
				Id:       int(questionId.Int64),
				Question: question.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fail[UserWithSecurityQuestions](UnknownError)
	}

	if result == nil {
		return fail[UserWithSecurityQuestions](UserDoesNotExist)
	}

	return ok(*result)
}
