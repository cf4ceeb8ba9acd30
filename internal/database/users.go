package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const userColumns = "id, name, password, is_active, is_online, created_at, updated_at"

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.Id,
		&u.Name,
		&u.Password,
		&u.IsActive,
		&u.IsOnline,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

// CreateUser inserts a user and, when recovery answers are supplied, the
// answer rows in the same transaction. A user never exists without its
// declared recovery answers.
func (db *PgParlorRepository) CreateUser(params CreateUserParams, answers []SecurityQuestionAnswerInput) Result[CreatedUser] {
	var created CreatedUser

	err := db.withTx(func(tx *sql.Tx) error {
		now := time.Now().UTC()
		row := tx.QueryRow(
			"INSERT INTO users (name, password, created_at, updated_at) "+
				"VALUES ($1, $2, $3, $4) RETURNING "+userColumns,
			params.Name,
			params.Password,
			now,
			now,
		)

		var err error
		created.User, err = scanUser(row)
		if err != nil {
			return err
		}

		for _, answer := range answers {
			var saved SecurityQuestionAnswer
			err := tx.QueryRow(
				"INSERT INTO security_question_answers (user_id, security_question_id, answer) "+
					"VALUES ($1, $2, $3) RETURNING user_id, security_question_id, answer",
				created.User.Id,
				answer.SecurityQuestionId,
				answer.Answer,
			).Scan(&saved.UserId, &saved.SecurityQuestionId, &saved.Answer)
			if err != nil {
				return err
			}

			created.Answers = append(created.Answers, saved)
		}

		return nil
	})
	if err != nil {
		return fail[CreatedUser](classify(err, UserDoesNotExist))
	}

	return ok(created)
}

func (db *PgParlorRepository) RetrieveUserById(id int) Result[User] {
	row := db.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1 LIMIT 1",
		id,
	)

	user, err := scanUser(row)
	if err != nil {
		return fail[User](classify(err, UserDoesNotExist))
	}

	return ok(user)
}

func (db *PgParlorRepository) RetrieveUserByName(name string) Result[User] {
	row := db.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE name = $1 LIMIT 1",
		name,
	)

	user, err := scanUser(row)
	if err != nil {
		return fail[User](classify(err, UserDoesNotExist))
	}

	return ok(user)
}

// UpdateUser applies a partial-field patch. A patch with no recognized
// fields fails with NotProvidedValidFields rather than silently
// no-opping. Deactivating a user also forces it offline.
func (db *PgParlorRepository) UpdateUser(id int, params UpdateUserParams) Result[User] {
	if params.IsActive != nil && !*params.IsActive {
		offline := false
		params.IsOnline = &offline
	}

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
	if params.IsActive != nil {
		addAssignment("is_active", *params.IsActive)
	}
	if params.IsOnline != nil {
		addAssignment("is_online", *params.IsOnline)
	}

	if len(assignments) == 0 {
		return fail[User](NotProvidedValidFields)
	}

	addAssignment("updated_at", time.Now().UTC())

	row := db.conn.QueryRow(
		"UPDATE users SET "+strings.Join(assignments, ", ")+
			" WHERE id = $1 RETURNING "+userColumns,
		args...,
	)

	user, err := scanUser(row)
	if err != nil {
		return fail[User](classify(err, UserDoesNotExist))
	}

	return ok(user)
}

func (db *PgParlorRepository) DeleteUser(id int) ActionResult {
	res, err := db.conn.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return failAction(classify(err, UserDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(UserDoesNotExist)
	}

	return done()
}
