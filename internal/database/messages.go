package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const messageColumns = "id, user_id, chatroom_id, content, deleted, created_at, updated_at"

func scanMessage(row *sql.Row) (ChatroomMessage, error) {
	var m ChatroomMessage
	err := row.Scan(
		&m.Id,
		&m.UserId,
		&m.ChatroomId,
		&m.Content,
		&m.Deleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	return m, err
}

func (db *PgParlorRepository) CreateChatroomMessage(params CreateChatroomMessageParams) Result[ChatroomMessage] {
	now := time.Now().UTC()
	row := db.conn.QueryRow(
		"INSERT INTO chatroom_messages (user_id, chatroom_id, content, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5) RETURNING "+messageColumns,
		params.UserId,
		params.ChatroomId,
		params.Content,
		now,
		now,
	)

	msg, err := scanMessage(row)
	if err != nil {
		return fail[ChatroomMessage](classify(err, ChatroomMessageDoesNotExist))
	}

	return ok(msg)
}

func (db *PgParlorRepository) RetrieveChatroomMessage(id int) Result[ChatroomMessage] {
	row := db.conn.QueryRow(
		"SELECT "+messageColumns+" FROM chatroom_messages WHERE id = $1 LIMIT 1",
		id,
	)

	msg, err := scanMessage(row)
	if err != nil {
		return fail[ChatroomMessage](classify(err, ChatroomMessageDoesNotExist))
	}

	return ok(msg)
}

// RetrieveAllChatroomMessages returns the room's messages in insertion
// order. A room with no messages yields an empty list, not a failure.
func (db *PgParlorRepository) RetrieveAllChatroomMessages(chatroomId int) Result[[]ChatroomMessage] {
	exists, err := db.chatroomExists(chatroomId)
	if err != nil {
		return fail[[]ChatroomMessage](UnknownError)
	}
	if !exists {
		return fail[[]ChatroomMessage](ChatroomDoesNotExist)
	}

	rows, err := db.conn.Query(
		"SELECT "+messageColumns+" FROM chatroom_messages WHERE chatroom_id = $1 ORDER BY id",
		chatroomId,
	)
	if err != nil {
		return fail[[]ChatroomMessage](UnknownError)
	}
	defer rows.Close()

	messages := make([]ChatroomMessage, 0)
	for rows.Next() {
		var m ChatroomMessage
		err := rows.Scan(&m.Id, &m.UserId, &m.ChatroomId, &m.Content, &m.Deleted, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return fail[[]ChatroomMessage](UnknownError)
		}

		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return fail[[]ChatroomMessage](UnknownError)
	}

	return ok(messages)
}

// UpdateChatroomMessage applies a partial-field patch to a message's
// content or deleted flag.
func (db *PgParlorRepository) UpdateChatroomMessage(id int, params UpdateChatroomMessageParams) Result[ChatroomMessage] {
	var (
		assignments []string
		args        []any
	)
	args = append(args, id)

	addAssignment := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Content != nil {
		addAssignment("content", *params.Content)
	}
	if params.Deleted != nil {
		addAssignment("deleted", *params.Deleted)
	}

	if len(assignments) == 0 {
		return fail[ChatroomMessage](NotProvidedValidFields)
	}

	addAssignment("updated_at", time.Now().UTC())

	row := db.conn.QueryRow(
		"UPDATE chatroom_messages SET "+strings.Join(assignments, ", ")+
			" WHERE id = $1 RETURNING "+messageColumns,
		args...,
	)

	msg, err := scanMessage(row)
	if err != nil {
		return fail[ChatroomMessage](classify(err, ChatroomMessageDoesNotExist))
	}

	return ok(msg)
}

func (db *PgParlorRepository) DeleteChatroomMessage(id int) ActionResult {
	res, err := db.conn.Exec("DELETE FROM chatroom_messages WHERE id = $1", id)
	if err != nil {
		return failAction(classify(err, ChatroomMessageDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(ChatroomMessageDoesNotExist)
	}

	return done()
}
