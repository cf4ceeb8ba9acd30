package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/types"
)

type SecurityAnswerRequest struct {
	SecurityQuestionId int    `json:"security_question_id"`
	Answer             string `json:"answer"`
}

type RegisterRequest struct {
	Name                    string                  `json:"name"`
	Password                string                  `json:"password"`
	SecurityQuestionAnswers []SecurityAnswerRequest `json:"security_question_answers"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
	IsOnline *bool   `json:"is_online"`
}

func (s *ParlorApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

// writeFailure renders a store failure as its HTTP equivalent.
func (s *ParlorApp) writeFailure(w http.ResponseWriter, reason database.FailureReason) {
	errResp := NewFailureError(reason)
	s.writeJson(w, errResp.StatusCode, errResp)
}

func queryInt(r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0, false
	}
	return value, true
}

func toUserType(u database.User) types.User {
	return types.User{
		Id:        u.Id,
		Name:      u.Name,
		IsActive:  u.IsActive,
		IsOnline:  u.IsOnline,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toChatroomType(c database.Chatroom) types.Chatroom {
	return types.Chatroom{
		Id:        c.Id,
		OwnerId:   c.OwnerId,
		Name:      c.Name,
		Protected: c.Password != nil,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *ParlorApp) createAccount(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Name == "" || req.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var answers []database.SecurityQuestionAnswerInput
	for _, answer := range req.SecurityQuestionAnswers {
		answers = append(answers, database.SecurityQuestionAnswerInput{
			SecurityQuestionId: answer.SecurityQuestionId,
			Answer:             answer.Answer,
		})
	}

	res := s.db.CreateUser(database.CreateUserParams{
		Name:     req.Name,
		Password: req.Password,
	}, answers)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	if s.stats != nil {
		s.stats.Incr(metricAccountsCreated)
	}

	s.writeJson(w, http.StatusCreated, toUserType(res.Value.User))
}

func (s *ParlorApp) login(w http.ResponseWriter, r *http.Request) {
	var lr LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if lr.Name == "" || lr.Password == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.RetrieveUserByName(lr.Name)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	if res.Value.Password != lr.Password || !res.Value.IsActive {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	u := toUserType(res.Value)

	token, err := s.createJwtForSession(u, defaultJwtExpiration)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	http.SetCookie(w, createJwtCookie(token, defaultJwtExpiration))

	online := true
	if updated := s.db.UpdateUser(u.Id, database.UpdateUserParams{IsOnline: &online}); updated.Success {
		u = toUserType(updated.Value)
	}

	s.writeJson(w, http.StatusOK, u)
}

func (s *ParlorApp) logout(w http.ResponseWriter, r *http.Request) {
	if userId, ok := UserId(r.Context()); ok {
		offline := false
		s.db.UpdateUser(userId, database.UpdateUserParams{IsOnline: &offline})
	}

	// instruct browser to delete cookie by overwriting it with an expired token
	http.SetCookie(w, createJwtCookie("", 0))
	w.WriteHeader(http.StatusNoContent)
}

func (s *ParlorApp) session(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.RetrieveUserById(userId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.writeJson(w, http.StatusOK, toUserType(res.Value))
}

func (s *ParlorApp) account(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	switch r.Method {
	case http.MethodGet:
		res := s.db.RetrieveUserById(userId)
		if !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		s.writeJson(w, http.StatusOK, toUserType(res.Value))
	case http.MethodPut:
		var req UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		res := s.db.UpdateUser(userId, database.UpdateUserParams{
			Name:     req.Name,
			Password: req.Password,
			IsActive: req.IsActive,
			IsOnline: req.IsOnline,
		})
		if !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		s.writeJson(w, http.StatusOK, toUserType(res.Value))
	case http.MethodDelete:
		if res := s.db.DeleteUser(userId); !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		http.SetCookie(w, createJwtCookie("", 0))
		s.writeJson(w, http.StatusNoContent, nil)
	default:
		errResp := NewMethodNotAllowedError()
		s.writeJson(w, errResp.StatusCode, errResp)
	}
}

// getAccountChatrooms returns the caller's chatrooms filtered by relation:
// subscribed (default), owned, admin or banned.
func (s *ParlorApp) getAccountChatrooms(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var res database.Result[database.UserWithChatrooms]
	switch r.URL.Query().Get("relation") {
	case "", "subscribed":
		res = s.db.RetrieveUserAndAllSubscribedChatrooms(userId)
	case "owned":
		res = s.db.RetrieveUserAndAllOwnedChatrooms(userId)
	case "admin":
		res = s.db.RetrieveUserAndAllAdminChatrooms(userId)
	case "banned":
		res = s.db.RetrieveUserAndAllBannedChatrooms(userId)
	default:
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	rooms := make([]types.ChatroomSummary, 0, len(res.Value.Chatrooms))
	for _, room := range res.Value.Chatrooms {
		rooms = append(rooms, types.ChatroomSummary{Id: room.Id, Name: room.Name})
	}

	s.writeJson(w, http.StatusOK, rooms)
}

func (s *ParlorApp) getSecurityQuestions(w http.ResponseWriter, _ *http.Request) {
	res := s.db.RetrieveAllSecurityQuestions()
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	questions := make([]types.SecurityQuestion, 0, len(res.Value))
	for _, q := range res.Value {
		questions = append(questions, types.SecurityQuestion{Id: q.Id, Question: q.Question})
	}

	s.writeJson(w, http.StatusOK, questions)
}

// getAccountSecurityQuestions returns the questions the caller has
// recorded recovery answers for.
func (s *ParlorApp) getAccountSecurityQuestions(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.RetrieveUserWithSecurityQuestions(userId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	questions := make([]types.SecurityQuestion, 0, len(res.Value.Questions))
	for _, q := range res.Value.Questions {
		questions = append(questions, types.SecurityQuestion{Id: q.Id, Question: q.Question})
	}

	s.writeJson(w, http.StatusOK, questions)
}
