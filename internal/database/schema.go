package database

import "fmt"

// Table DDL. Constraints are named so the failure classifier can resolve
// engine violations back to domain failure reasons.
const createTables = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	password TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	is_online BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT users_name_unique UNIQUE (name),
	CONSTRAINT users_name_valid CHECK (
		name ~ '[A-Za-z]' AND char_length(name) BETWEEN 5 AND 20
	),
	CONSTRAINT users_password_valid CHECK (
		password ~ '[A-Z]' AND password ~ '[a-z]'
		AND password ~ '[]!@#$%^&*()[{}|\:;<,>.?/=_+-]'
		AND char_length(password) BETWEEN 5 AND 20
	)
);

CREATE TABLE IF NOT EXISTS chatrooms (
	id SERIAL PRIMARY KEY,
	owner_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	password TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT chatrooms_name_unique UNIQUE (name),
	CONSTRAINT chatrooms_name_valid CHECK (char_length(name) BETWEEN 3 AND 40),
	CONSTRAINT chatrooms_owner_fk FOREIGN KEY (owner_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS chatroom_subscriptions (
	user_id INTEGER NOT NULL,
	chatroom_id INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT chatroom_subscriptions_pkey PRIMARY KEY (user_id, chatroom_id),
	CONSTRAINT chatroom_subscriptions_user_fk FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT chatroom_subscriptions_chatroom_fk FOREIGN KEY (chatroom_id) REFERENCES chatrooms (id)
);

CREATE TABLE IF NOT EXISTS chatroom_admins (
	user_id INTEGER NOT NULL,
	chatroom_id INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT chatroom_admins_pkey PRIMARY KEY (user_id, chatroom_id),
	CONSTRAINT chatroom_admins_user_fk FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT chatroom_admins_chatroom_fk FOREIGN KEY (chatroom_id) REFERENCES chatrooms (id)
);

CREATE TABLE IF NOT EXISTS chatroom_bans (
	user_id INTEGER NOT NULL,
	chatroom_id INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT chatroom_bans_pkey PRIMARY KEY (user_id, chatroom_id),
	CONSTRAINT chatroom_bans_user_fk FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT chatroom_bans_chatroom_fk FOREIGN KEY (chatroom_id) REFERENCES chatrooms (id)
);

CREATE TABLE IF NOT EXISTS chatroom_messages (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	chatroom_id INTEGER NOT NULL,
	content TEXT NOT NULL,
	deleted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT chatroom_messages_content_valid CHECK (char_length(content) BETWEEN 1 AND 120),
	CONSTRAINT chatroom_messages_user_fk FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT chatroom_messages_chatroom_fk FOREIGN KEY (chatroom_id) REFERENCES chatrooms (id)
);

CREATE TABLE IF NOT EXISTS security_questions (
	id SERIAL PRIMARY KEY,
	question TEXT NOT NULL,
	CONSTRAINT security_questions_question_unique UNIQUE (question)
);

CREATE TABLE IF NOT EXISTS security_question_answers (
	user_id INTEGER NOT NULL,
	security_question_id INTEGER NOT NULL,
	answer TEXT NOT NULL,
	CONSTRAINT security_question_answers_pkey PRIMARY KEY (user_id, security_question_id),
	CONSTRAINT security_question_answers_user_fk FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT security_question_answers_question_fk FOREIGN KEY (security_question_id) REFERENCES security_questions (id)
);
`

const dropTables = `
DROP TABLE IF EXISTS security_question_answers CASCADE;
DROP TABLE IF EXISTS security_questions CASCADE;
DROP TABLE IF EXISTS chatroom_messages CASCADE;
DROP TABLE IF EXISTS chatroom_bans CASCADE;
DROP TABLE IF EXISTS chatroom_admins CASCADE;
DROP TABLE IF EXISTS chatroom_subscriptions CASCADE;
DROP TABLE IF EXISTS chatrooms CASCADE;
DROP TABLE IF EXISTS users CASCADE;
`

// Sync creates the schema. With resetData set, all tables are dropped and
// rebuilt first; otherwise only missing tables are added.
func (db *PgParlorRepository) Sync(resetData bool) error {
	if resetData {
		if _, err := db.conn.Exec(dropTables); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}

	if _, err := db.conn.Exec(createTables); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return nil
}

// securityQuestionCatalog is the fixed set of recovery questions offered
// at registration.
var securityQuestionCatalog = []string{
	"What was the name of your first grade teacher",
	"What was the color of your first car",
	"What was the name of the street you lived on when you were 10 years old",
	"What is the name of your paternal grandmother?",
	"What is the name of your paternal grandfather?",
	"What is the name of your maternal grandmother?",
	"What is the name of your maternal grandfather?",
	"What is the name of your eldest cousin?",
	"What high school did you graduate from?",
	"What is your favorite movie?",
	"What was the mascot at your highscool?",
	"What was the name of your first boyfriend/girlfriend?",
	"What was the make of your first car?",
	"In what city were you born?",
	"Which is your favorite sports team?",
	"What is your favorite Olympic summer event?",
	"What is your favorite Olympic winter event?",
	"What is the name of your favorite restraunt?",
	"Which location was your favorite to travel to?",
	"What is your favorite color?",
}

// SeedSecurityQuestions inserts the question catalog, skipping questions
// already present.
func (db *PgParlorRepository) SeedSecurityQuestions() error {
	for _, q := range securityQuestionCatalog {
		_, err := db.conn.Exec(
			"INSERT INTO security_questions (question) VALUES ($1) ON CONFLICT (question) DO NOTHING",
			q,
		)
		if err != nil {
			return fmt.Errorf("seed security question: %w", err)
		}
	}

	return nil
}
