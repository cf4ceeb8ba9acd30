package database

import "time"

const insertAdminQuery = "INSERT INTO chatroom_admins (user_id, chatroom_id, created_at, updated_at) " +
	"VALUES ($1, $2, $3, $4) RETURNING user_id, chatroom_id, created_at, updated_at"

func (db *PgParlorRepository) CreateChatroomAdmin(userId, chatroomId int) Result[ChatroomAdmin] {
	now := time.Now().UTC()

	var admin ChatroomAdmin
	err := db.conn.QueryRow(
		insertAdminQuery,
		userId,
		chatroomId,
		now,
		now,
	).Scan(&admin.UserId, &admin.ChatroomId, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fail[ChatroomAdmin](classify(err, ChatroomAdminDoesNotExist))
	}

	return ok(admin)
}

func (db *PgParlorRepository) RetrieveChatroomAdminsByChatroomId(chatroomId int) Result[[]ChatroomAdmin] {
	exists, err := db.chatroomExists(chatroomId)
	if err != nil {
		return fail[[]ChatroomAdmin](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomAdmin](ChatroomDoesNotExist)
	}

	return db.listAdmins("chatroom_id", chatroomId)
}

func (db *PgParlorRepository) RetrieveChatroomAdminsByUserId(userId int) Result[[]ChatroomAdmin] {
	exists, err := db.userExists(userId)
	if err != nil {
		return fail[[]ChatroomAdmin](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomAdmin](UserDoesNotExist)
	}

	return db.listAdmins("user_id", userId)
}

func (db *PgParlorRepository) listAdmins(column string, id int) Result[[]ChatroomAdmin] {
	rows, err := db.conn.Query(
		"SELECT user_id, chatroom_id, created_at, updated_at FROM chatroom_admins WHERE "+column+" = $1",
		id,
	)
	if err != nil {
		return fail[[]ChatroomAdmin](UnknownError)
	}
	defer rows.Close()

	admins := make([]ChatroomAdmin, 0)
	for rows.Next() {
		var admin ChatroomAdmin
		if err := rows.Scan(&admin.UserId, &admin.ChatroomId, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
			return fail[[]ChatroomAdmin](UnknownError)
		}

		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return fail[[]ChatroomAdmin](UnknownError)
	}

	return ok(admins)
}

func (db *PgParlorRepository) DeleteChatroomAdmin(userId, chatroomId int) ActionResult {
	res, err := db.conn.Exec(
		"DELETE FROM chatroom_admins WHERE user_id = $1 AND chatroom_id = $2",
		userId,
		chatroomId,
	)
	if err != nil {
		return failAction(classify(err, ChatroomAdminDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(ChatroomAdminDoesNotExist)
	}

	return done()
}
