package database

import "time"

func (db *PgParlorRepository) CreateChatroomBan(userId, chatroomId int) Result[ChatroomBan] {
	now := time.Now().UTC()

	var ban ChatroomBan
	err := db.conn.QueryRow(
		"INSERT INTO chatroom_bans (user_id, chatroom_id, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING user_id, chatroom_id, created_at, updated_at",
		userId,
		chatroomId,
		now,
		now,
	).Scan(&ban.UserId, &ban.ChatroomId, &ban.CreatedAt, &ban.UpdatedAt)
	if err != nil {
		return fail[ChatroomBan](classify(err, ChatroomBanDoesNotExist))
	}

	return ok(ban)
}

func (db *PgParlorRepository) RetrieveChatroomBansByChatroomId(chatroomId int) Result[[]ChatroomBan] {
	exists, err := db.chatroomExists(chatroomId)
	if err != nil {
		return fail[[]ChatroomBan](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomBan](ChatroomDoesNotExist)
	}

	return db.listBans("chatroom_id", chatroomId)
}

func (db *PgParlorRepository) RetrieveChatroomBansByUserId(userId int) Result[[]ChatroomBan] {
	exists, err := db.userExists(userId)
	if err != nil {
		return fail[[]ChatroomBan](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomBan](UserDoesNotExist)
	}

	return db.listBans("user_id", userId)
}

func (db *PgParlorRepository) listBans(column string, id int) Result[[]ChatroomBan] {
	rows, err := db.conn.Query(
		"SELECT user_id, chatroom_id, created_at, updated_at FROM chatroom_bans WHERE "+column+" = $1",
		id,
	)
	if err != nil {
		return fail[[]ChatroomBan](UnknownError)
	}
	defer rows.Close()

	bans := make([]ChatroomBan, 0)
	for rows.Next() {
		var ban ChatroomBan
		if err := rows.Scan(&ban.UserId, &ban.ChatroomId, &ban.CreatedAt, &ban.UpdatedAt); err != nil {
			return fail[[]ChatroomBan](UnknownError)
		}

		bans = append(bans, ban)
	}
	if err := rows.Err(); err != nil {
		return fail[[]ChatroomBan](UnknownError)
	}

	return ok(bans)
}

func (db *PgParlorRepository) DeleteChatroomBan(userId, chatroomId int) ActionResult {
	res, err := db.conn.Exec(
		"DELETE FROM chatroom_bans WHERE user_id = $1 AND chatroom_id = $2",
		userId,
		chatroomId,
	)
	if err != nil {
		return failAction(classify(err, ChatroomBanDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(ChatroomBanDoesNotExist)
	}

	return done()
}
