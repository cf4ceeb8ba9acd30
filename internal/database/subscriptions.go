package database

import "time"

const (
	insertSubscriptionQuery = "INSERT INTO chatroom_subscriptions (user_id, chatroom_id, created_at, updated_at) " +
		"VALUES ($1, $2, $3, $4) RETURNING user_id, chatroom_id, created_at, updated_at"
	subscriptionColumns = "user_id, chatroom_id, created_at, updated_at"
)

func (db *PgParlorRepository) CreateChatroomSubscription(userId, chatroomId int) Result[ChatroomSubscription] {
	now := time.Now().UTC()

	var sub ChatroomSubscription
	err := db.conn.QueryRow(
		insertSubscriptionQuery,
		userId,
		chatroomId,
		now,
		now,
	).Scan(&sub.UserId, &sub.ChatroomId, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fail[ChatroomSubscription](classify(err, ChatroomSubscriptionDoesNotExist))
	}

	return ok(sub)
}

func (db *PgParlorRepository) RetrieveChatroomSubscriptionsByChatroomId(chatroomId int) Result[[]ChatroomSubscription] {
	exists, err := db.chatroomExists(chatroomId)
	if err != nil {
		return fail[[]ChatroomSubscription](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomSubscription](ChatroomDoesNotExist)
	}

	return db.listSubscriptions("chatroom_id", chatroomId)
}

func (db *PgParlorRepository) RetrieveChatroomSubscriptionsByUserId(userId int) Result[[]ChatroomSubscription] {
	exists, err := db.userExists(userId)
	if err != nil {
		return fail[[]ChatroomSubscription](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomSubscription](UserDoesNotExist)
	}

	return db.listSubscriptions("user_id", userId)
}

func (db *PgParlorRepository) listSubscriptions(column string, id int) Result[[]ChatroomSubscription] {
	rows, err := db.conn.Query(
		"SELECT "+subscriptionColumns+" FROM chatroom_subscriptions WHERE "+column+" = $1",
		id,
	)
	if err != nil {
		return fail[[]ChatroomSubscription](UnknownError)
	}
	defer rows.Close()

	subs := make([]ChatroomSubscription, 0)
	for rows.Next() {
		var sub ChatroomSubscription
		if err := rows.Scan(&sub.UserId, &sub.ChatroomId, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return fail[[]ChatroomSubscription](UnknownError)
		}

		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return fail[[]ChatroomSubscription](UnknownError)
	}

	return ok(subs)
}

// VerifyChatroomSubscription reports whether the (user, chatroom) pair is
// subscribed.
func (db *PgParlorRepository) VerifyChatroomSubscription(userId, chatroomId int) ActionResult {
	var exists bool
	err := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM chatroom_subscriptions WHERE user_id = $1 AND chatroom_id = $2)",
		userId,
		chatroomId,
	).Scan(&exists)
	if err != nil {
		return failAction(UnknownError)
	}
	if !exists {
		return failAction(ChatroomSubscriptionDoesNotExist)
	}

	return done()
}

func (db *PgParlorRepository) DeleteChatroomSubscription(userId, chatroomId int) ActionResult {
	res, err := db.conn.Exec(
		"DELETE FROM chatroom_subscriptions WHERE user_id = $1 AND chatroom_id = $2",
		userId,
		chatroomId,
	)
	if err != nil {
		return failAction(classify(err, ChatroomSubscriptionDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(ChatroomSubscriptionDoesNotExist)
	}

	return done()
}
