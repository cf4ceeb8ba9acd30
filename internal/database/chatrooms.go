package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const chatroomColumns = "id, owner_id, name, password, created_at, updated_at"

func scanChatroom(row *sql.Row) (Chatroom, error) {
	var c Chatroom
	err := row.Scan(
		&c.Id,
		&c.OwnerId,
		&c.Name,
		&c.Password,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}

// CreateChatroom inserts the room, then a subscription and an admin row
// for the owner, all in one transaction. If the room insert fails no
// further step runs; if a later step fails the room insert is undone.
func (db *PgParlorRepository) CreateChatroom(params CreateChatroomParams) Result[CreatedChatroom] {
	var created CreatedChatroom

	err := db.withTx(func(tx *sql.Tx) error {
		now := time.Now().UTC()
		row := tx.QueryRow(
			"INSERT INTO chatrooms (owner_id, name, password, created_at, updated_at) "+
				"VALUES ($1, $2, $3, $4, $5) RETURNING "+chatroomColumns,
			params.OwnerId,
			params.Name,
			params.Password,
			now,
			now,
		)

		var err error
		created.Chatroom, err = scanChatroom(row)
		if err != nil {
			return err
		}

		err = tx.QueryRow(
			insertSubscriptionQuery,
			params.OwnerId,
			created.Chatroom.Id,
			now,
			now,
		).Scan(
			&created.Subscription.UserId,
			&created.Subscription.ChatroomId,
			&created.Subscription.CreatedAt,
			&created.Subscription.UpdatedAt,
		)
		if err != nil {
			return err
		}

		return tx.QueryRow(
			insertAdminQuery,
			params.OwnerId,
			created.Chatroom.Id,
			now,
			now,
		).Scan(
			&created.Admin.UserId,
			&created.Admin.ChatroomId,
			&created.Admin.CreatedAt,
			&created.Admin.UpdatedAt,
		)
	})
	if err != nil {
		return fail[CreatedChatroom](classify(err, ChatroomDoesNotExist))
	}

	return ok(created)
}

func (db *PgParlorRepository) RetrieveChatroomById(id int) Result[Chatroom] {
	row := db.conn.QueryRow(
		"SELECT "+chatroomColumns+" FROM chatrooms WHERE id = $1 LIMIT 1",
		id,
	)

	room, err := scanChatroom(row)
	if err != nil {
		return fail[Chatroom](classify(err, ChatroomDoesNotExist))
	}

	return ok(room)
}

func (db *PgParlorRepository) RetrieveChatroomByName(name string) Result[Chatroom] {
	row := db.conn.QueryRow(
		"SELECT "+chatroomColumns+" FROM chatrooms WHERE name = $1 LIMIT 1",
		name,
	)

	room, err := scanChatroom(row)
	if err != nil {
		return fail[Chatroom](classify(err, ChatroomDoesNotExist))
	}

	return ok(room)
}

func (db *PgParlorRepository) RetrieveAllChatrooms() Result[[]Chatroom] {
	rows, err := db.conn.Query("SELECT " + chatroomColumns + " FROM chatrooms ORDER BY id")
	if err != nil {
		return fail[[]Chatroom](classify(err, ChatroomDoesNotExist))
	}
	defer rows.Close()

	rooms := make([]Chatroom, 0)
	for rows.Next() {
		var c Chatroom
		if err := rows.Scan(&c.Id, &c.OwnerId, &c.Name, &c.Password, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fail[[]Chatroom](UnknownError)
		}

		rooms = append(rooms, c)
	}
	if err := rows.Err(); err != nil {
		return fail[[]Chatroom](UnknownError)
	}

	return ok(rooms)
}

// UpdateChatroom applies a partial-field patch to the room's name or
// password. A patch with no recognized fields fails with
// NotProvidedValidFields.
func (db *PgParlorRepository) UpdateChatroom(id int, params UpdateChatroomParams) Result[Chatroom] {
	var (
		assignments []string
		args        []any
	)
	args = append(args, id)

	addAssignment := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		addAssignment("name", *params.Name)
	}
	if params.Password != nil {
		addAssignment("password", *params.Password)
	}

	if len(assignments) == 0 {
		return fail[Chatroom](NotProvidedValidFields)
	}

	addAssignment("updated_at", time.Now().UTC())

	row := db.conn.QueryRow(
		"UPDATE chatrooms SET "+strings.Join(assignments, ", ")+
			" WHERE id = $1 RETURNING "+chatroomColumns,
		args...,
	)

	room, err := scanChatroom(row)
	if err != nil {
		return fail[Chatroom](classify(err, ChatroomDoesNotExist))
	}

	return ok(room)
}

// DeleteChatroomById removes the room and all rows depending on it in one
// transaction: messages, subscriptions, admins, bans.
func (db *PgParlorRepository) DeleteChatroomById(id int) ActionResult {
	var affected int64

	err := db.withTx(func(tx *sql.Tx) error {
		for _, table := range []string{
			"chatroom_messages",
			"chatroom_subscriptions",
			"chatroom_admins",
			"chatroom_bans",
		} {
			if _, err := tx.Exec("DELETE FROM "+table+" WHERE chatroom_id = $1", id); err != nil {
				return err
			}
		}

		res, err := tx.Exec("DELETE FROM chatrooms WHERE id = $1", id)
		if err != nil {
			return err
		}

		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return failAction(classify(err, ChatroomDoesNotExist))
	}
	if affected == 0 {
		return failAction(ChatroomDoesNotExist)
	}

	return done()
}
