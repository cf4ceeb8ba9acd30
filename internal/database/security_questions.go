package database

func (db *PgParlorRepository) CreateSecurityQuestion(question string) Result[SecurityQuestion] {
	var q SecurityQuestion
	err := db.conn.QueryRow(
		"INSERT INTO security_questions (question) VALUES ($1) RETURNING id, question",
		question,
	).Scan(&q.Id, &q.Question)
	if err != nil {
		return fail[SecurityQuestion](classify(err, SecurityQuestionDoesNotExist))
	}

	return ok(q)
}

func (db *PgParlorRepository) RetrieveSecurityQuestionById(id int) Result[SecurityQuestion] {
	var q SecurityQuestion
	err := db.conn.QueryRow(
		"SELECT id, question FROM security_questions WHERE id = $1 LIMIT 1",
		id,
	).Scan(&q.Id, &q.Question)
	if err != nil {
		return fail[SecurityQuestion](classify(err, SecurityQuestionDoesNotExist))
	}

	return ok(q)
}

func (db *PgParlorRepository) RetrieveAllSecurityQuestions() Result[[]SecurityQuestion] {
	rows, err := db.conn.Query("SELECT id, question FROM security_questions ORDER BY id")
	if err != nil {
		return fail[[]SecurityQuestion](UnknownError)
	}
	defer rows.Close()

	questions := make([]SecurityQuestion, 0)
	for rows.Next() {
		var q SecurityQuestion
		if err := rows.Scan(&q.Id, &q.Question); err != nil {
			return fail[[]SecurityQuestion](UnknownError)
		}

		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return fail[[]SecurityQuestion](UnknownError)
	}

	return ok(questions)
}

func (db *PgParlorRepository) CreateSecurityQuestionAnswer(answer SecurityQuestionAnswer) Result[SecurityQuestionAnswer] {
	var saved SecurityQuestionAnswer
	err := db.conn.QueryRow(
		"INSERT INTO security_question_answers (user_id, security_question_id, answer) "+
			"VALUES ($1, $2, $3) RETURNING user_id, security_question_id, answer",
		answer.UserId,
		answer.SecurityQuestionId,
		answer.Answer,
	).Scan(&saved.UserId, &saved.SecurityQuestionId, &saved.Answer)
	if err != nil {
		return fail[SecurityQuestionAnswer](classify(err, SecurityQuestionAnswerDoesNotExist))
	}

	return ok(saved)
}

func (db *PgParlorRepository) RetrieveSecurityQuestionAnswerByIds(userId, securityQuestionId int) Result[SecurityQuestionAnswer] {
	var answer SecurityQuestionAnswer
	err := db.conn.QueryRow(
		"SELECT user_id, security_question_id, answer FROM security_question_answers "+
			"WHERE user_id = $1 AND security_question_id = $2 LIMIT 1",
		userId,
		securityQuestionId,
	).Scan(&answer.UserId, &answer.SecurityQuestionId, &answer.Answer)
	if err != nil {
		return fail[SecurityQuestionAnswer](classify(err, SecurityQuestionAnswerDoesNotExist))
	}

	return ok(answer)
}

func (db *PgParlorRepository) RetrieveAllSecurityQuestionAnswersByUserId(userId int) Result[[]SecurityQuestionAnswer] {
	exists, err := db.userExists(userId)
	if err != nil {
		return fail[[]SecurityQuestionAnswer](UnknownError)
	}
	if !exists {
		return fail[[]SecurityQuestionAnswer](UserDoesNotExist)
	}

	rows, err := db.conn.Query(
		"SELECT user_id, security_question_id, answer FROM security_question_answers WHERE user_id = $1",
		userId,
	)
	if err != nil {
		return fail[[]SecurityQuestionAnswer](UnknownError)
	}
	defer rows.Close()

	answers := make([]SecurityQuestionAnswer, 0)
	for rows.Next() {
		var a SecurityQuestionAnswer
		if err := rows.Scan(&a.UserId, &a.SecurityQuestionId, &a.Answer); err != nil {
			return fail[[]SecurityQuestionAnswer](UnknownError)
		}

		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return fail[[]SecurityQuestionAnswer](UnknownError)
	}

	return ok(answers)
}

func (db *PgParlorRepository) DeleteSecurityQuestionAnswerByIds(userId, securityQuestionId int) ActionResult {
	res, err := db.conn.Exec(
		"DELETE FROM security_question_answers WHERE user_id = $1 AND security_question_id = $2",
		userId,
		securityQuestionId,
	)
	if err != nil {
		return failAction(classify(err, SecurityQuestionAnswerDoesNotExist))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return failAction(UnknownError)
	}
	if affected == 0 {
		return failAction(SecurityQuestionAnswerDoesNotExist)
	}

	return done()
}
