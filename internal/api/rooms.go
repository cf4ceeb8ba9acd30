package api

import (
	"encoding/json"
	"net/http"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/types"
)

type CreateChatroomRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UpdateChatroomRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type SubscribeRequest struct {
	ChatroomId int    `json:"chatroom_id"`
	Password   string `json:"password"`
}

type MembershipRequest struct {
	UserId     int `json:"user_id"`
	ChatroomId int `json:"chatroom_id"`
}

type CreateMessageRequest struct {
	ChatroomId int    `json:"chatroom_id"`
	Content    string `json:"content"`
}

type UpdateMessageRequest struct {
	Content *string `json:"content"`
	Deleted *bool   `json:"deleted"`
}

// isRoomModerator reports whether userId owns or administers the room.
func (s *ParlorApp) isRoomModerator(userId int, room database.Chatroom) bool {
	if room.OwnerId == userId {
		return true
	}

	res := s.db.RetrieveChatroomAdminsByChatroomId(room.Id)
	if !res.Success {
		return false
	}

	for _, admin := range res.Value {
		if admin.UserId == userId {
			return true
		}
	}

	return false
}

func (s *ParlorApp) isBannedFrom(userId, chatroomId int) bool {
	res := s.db.RetrieveChatroomBansByChatroomId(chatroomId)
	if !res.Success {
		return false
	}

	for _, ban := range res.Value {
		if ban.UserId == userId {
			return true
		}
	}

	return false
}

func (s *ParlorApp) createChatroom(w http.ResponseWriter, r *http.Request) {
	userId, ok := UserId(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateChatroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateChatroomParams{
		OwnerId: userId,
		Name:    req.Name,
	}

	if req.Password != "" {
		passwdHash, err := hashRoomPassword(req.Password)
		if err != nil {
			errResp := NewInternalServerError(err)
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.Password = &passwdHash
	}

	res := s.db.CreateChatroom(params)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	if s.stats != nil {
		s.stats.Incr(metricChatroomsCreated)
	}

	s.writeJson(w, http.StatusCreated, toChatroomType(res.Value.Chatroom))
}

// getChatroom serves a single room by id or name, or the full listing when
// neither is given.
func (s *ParlorApp) getChatroom(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryInt(r, "id"); ok {
		res := s.db.RetrieveChatroomById(id)
		if !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		s.writeJson(w, http.StatusOK, toChatroomType(res.Value))
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		res := s.db.RetrieveChatroomByName(name)
		if !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		s.writeJson(w, http.StatusOK, toChatroomType(res.Value))
		return
	}

	res := s.db.RetrieveAllChatrooms()
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	rooms := make([]types.Chatroom, 0, len(res.Value))
	for _, room := range res.Value {
		rooms = append(rooms, toChatroomType(room))
	}

	s.writeJson(w, http.StatusOK, rooms)
}

func (s *ParlorApp) updateChatroom(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	id, ok := queryInt(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateChatroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(id)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if roomRes.Value.OwnerId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.UpdateChatroomParams{Name: req.Name}
	if req.Password != nil {
		if *req.Password == "" {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		passwdHash, err := hashRoomPassword(*req.Password)
		if err != nil {
			errResp := NewInternalServerError(err)
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		params.Password = &passwdHash
	}

	res := s.db.UpdateChatroom(id, params)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.writeJson(w, http.StatusOK, toChatroomType(res.Value))
}

func (s *ParlorApp) deleteChatroom(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	id, ok := queryInt(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(id)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if roomRes.Value.OwnerId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if res := s.db.DeleteChatroomById(id); !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.events.Broadcast(Event{Type: EventRoomDeleted, ChatroomId: id})
	s.writeJson(w, http.StatusNoContent, nil)
}

// getChatroomMembers serves a room's subscriber, admin or ban roster.
func (s *ParlorApp) getChatroomMembers(w http.ResponseWriter, r *http.Request) {
	chatroomId, ok := queryInt(r, "chatroom_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var res database.Result[database.ChatroomWithUsers]
	switch r.URL.Query().Get("role") {
	case "", "subscribers":
		res = s.db.RetrieveChatroomWithAllSubscribers(chatroomId)
	case "admins":
		res = s.db.RetrieveChatroomWithAllAdmins(chatroomId)
	case "bans":
		res = s.db.RetrieveChatroomWithAllBans(chatroomId)
	default:
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	members := make([]types.ChatroomMember, 0, len(res.Value.Users))
	for _, u := range res.Value.Users {
		members = append(members, types.ChatroomMember{
			Id:       u.Id,
			Name:     u.Name,
			IsActive: u.IsActive,
			IsOnline: u.IsOnline,
		})
	}

	s.writeJson(w, http.StatusOK, members)
}

func (s *ParlorApp) getSubscriptions(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	var res database.Result[[]database.ChatroomSubscription]
	if chatroomId, ok := queryInt(r, "chatroom_id"); ok {
		res = s.db.RetrieveChatroomSubscriptionsByChatroomId(chatroomId)
	} else {
		res = s.db.RetrieveChatroomSubscriptionsByUserId(userId)
	}

	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	subs := make([]types.Membership, 0, len(res.Value))
	for _, sub := range res.Value {
		subs = append(subs, types.Membership{
			UserId:     sub.UserId,
			ChatroomId: sub.ChatroomId,
			CreatedAt:  sub.CreatedAt,
			UpdatedAt:  sub.UpdatedAt,
		})
	}

	s.writeJson(w, http.StatusOK, subs)
}

func (s *ParlorApp) createSubscription(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(req.ChatroomId)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if s.isBannedFrom(userId, req.ChatroomId) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if roomRes.Value.Password != nil && !verifyRoomPassword(*roomRes.Value.Password, req.Password) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.CreateChatroomSubscription(userId, req.ChatroomId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.events.Broadcast(Event{Type: EventUserJoined, ChatroomId: req.ChatroomId, UserId: userId})
	s.writeJson(w, http.StatusCreated, types.Membership{
		UserId:     res.Value.UserId,
		ChatroomId: res.Value.ChatroomId,
		CreatedAt:  res.Value.CreatedAt,
		UpdatedAt:  res.Value.UpdatedAt,
	})
}

// deleteSubscription removes the caller's own subscription, or another
// user's when the caller moderates the room.
func (s *ParlorApp) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	chatroomId, ok := queryInt(r, "chatroom_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	targetId := userId
	if id, ok := queryInt(r, "user_id"); ok && id != userId {
		roomRes := s.db.RetrieveChatroomById(chatroomId)
		if !roomRes.Success {
			s.writeFailure(w, roomRes.FailureID)
			return
		}

		if !s.isRoomModerator(userId, roomRes.Value) {
			errResp := NewForbiddenError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
		targetId = id
	}

	if res := s.db.DeleteChatroomSubscription(targetId, chatroomId); !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.events.Broadcast(Event{Type: EventUserLeft, ChatroomId: chatroomId, UserId: targetId})
	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *ParlorApp) createAdmin(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(req.ChatroomId)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if !s.isRoomModerator(userId, roomRes.Value) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.CreateChatroomAdmin(req.UserId, req.ChatroomId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.writeJson(w, http.StatusCreated, types.Membership{
		UserId:     res.Value.UserId,
		ChatroomId: res.Value.ChatroomId,
		CreatedAt:  res.Value.CreatedAt,
		UpdatedAt:  res.Value.UpdatedAt,
	})
}

func (s *ParlorApp) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	targetId, targetOk := queryInt(r, "user_id")
	chatroomId, roomOk := queryInt(r, "chatroom_id")
	if !targetOk || !roomOk {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(chatroomId)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	// admins may step down themselves, otherwise only the owner demotes
	if targetId != userId && roomRes.Value.OwnerId != userId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if res := s.db.DeleteChatroomAdmin(targetId, chatroomId); !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *ParlorApp) createBan(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(req.ChatroomId)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if !s.isRoomModerator(userId, roomRes.Value) || req.UserId == roomRes.Value.OwnerId {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.CreateChatroomBan(req.UserId, req.ChatroomId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	// a banned user keeps neither subscription nor admin standing
	s.db.DeleteChatroomSubscription(req.UserId, req.ChatroomId)
	s.db.DeleteChatroomAdmin(req.UserId, req.ChatroomId)

	s.events.Broadcast(Event{Type: EventUserBanned, ChatroomId: req.ChatroomId, UserId: req.UserId})
	s.writeJson(w, http.StatusCreated, types.Membership{
		UserId:     res.Value.UserId,
		ChatroomId: res.Value.ChatroomId,
		CreatedAt:  res.Value.CreatedAt,
		UpdatedAt:  res.Value.UpdatedAt,
	})
}

func (s *ParlorApp) deleteBan(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	targetId, targetOk := queryInt(r, "user_id")
	chatroomId, roomOk := queryInt(r, "chatroom_id")
	if !targetOk || !roomOk {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomRes := s.db.RetrieveChatroomById(chatroomId)
	if !roomRes.Success {
		s.writeFailure(w, roomRes.FailureID)
		return
	}

	if !s.isRoomModerator(userId, roomRes.Value) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if res := s.db.DeleteChatroomBan(targetId, chatroomId); !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}

func toMessageType(m database.ChatroomMessage) types.Message {
	return types.Message{
		Id:         m.Id,
		UserId:     m.UserId,
		ChatroomId: m.ChatroomId,
		Content:    m.Content,
		Deleted:    m.Deleted,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (s *ParlorApp) getMessages(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	if id, ok := queryInt(r, "id"); ok {
		res := s.db.RetrieveChatroomMessage(id)
		if !res.Success {
			s.writeFailure(w, res.FailureID)
			return
		}

		if sub := s.db.VerifyChatroomSubscription(userId, res.Value.ChatroomId); !sub.Success {
			errResp := NewForbiddenError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		s.writeJson(w, http.StatusOK, toMessageType(res.Value))
		return
	}

	chatroomId, ok := queryInt(r, "chatroom_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if sub := s.db.VerifyChatroomSubscription(userId, chatroomId); !sub.Success {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.RetrieveAllChatroomMessages(chatroomId)
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	messages := make([]types.Message, 0, len(res.Value))
	for _, m := range res.Value {
		messages = append(messages, toMessageType(m))
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *ParlorApp) createMessage(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if sub := s.db.VerifyChatroomSubscription(userId, req.ChatroomId); !sub.Success {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	res := s.db.CreateChatroomMessage(database.CreateChatroomMessageParams{
		UserId:     userId,
		ChatroomId: req.ChatroomId,
		Content:    req.Content,
	})
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	if s.stats != nil {
		s.stats.Incr(metricMessagesCreated)
	}

	msg := toMessageType(res.Value)
	s.events.Broadcast(Event{Type: EventMessageCreated, ChatroomId: msg.ChatroomId, UserId: userId, Message: &msg})
	s.writeJson(w, http.StatusCreated, msg)
}

// updateMessage lets the author edit a message; room moderators may only
// flip the deleted flag.
func (s *ParlorApp) updateMessage(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	id, ok := queryInt(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msgRes := s.db.RetrieveChatroomMessage(id)
	if !msgRes.Success {
		s.writeFailure(w, msgRes.FailureID)
		return
	}

	if msgRes.Value.UserId != userId {
		roomRes := s.db.RetrieveChatroomById(msgRes.Value.ChatroomId)
		if !roomRes.Success {
			s.writeFailure(w, roomRes.FailureID)
			return
		}

		if req.Content != nil || !s.isRoomModerator(userId, roomRes.Value) {
			errResp := NewForbiddenError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
	}

	res := s.db.UpdateChatroomMessage(id, database.UpdateChatroomMessageParams{
		Content: req.Content,
		Deleted: req.Deleted,
	})
	if !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	msg := toMessageType(res.Value)
	s.events.Broadcast(Event{Type: EventMessageUpdated, ChatroomId: msg.ChatroomId, UserId: userId, Message: &msg})
	s.writeJson(w, http.StatusOK, msg)
}

func (s *ParlorApp) deleteMessage(w http.ResponseWriter, r *http.Request) {
	userId, _ := UserId(r.Context())

	id, ok := queryInt(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msgRes := s.db.RetrieveChatroomMessage(id)
	if !msgRes.Success {
		s.writeFailure(w, msgRes.FailureID)
		return
	}

	if msgRes.Value.UserId != userId {
		roomRes := s.db.RetrieveChatroomById(msgRes.Value.ChatroomId)
		if !roomRes.Success {
			s.writeFailure(w, roomRes.FailureID)
			return
		}

		if !s.isRoomModerator(userId, roomRes.Value) {
			errResp := NewForbiddenError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
	}

	if res := s.db.DeleteChatroomMessage(id); !res.Success {
		s.writeFailure(w, res.FailureID)
		return
	}

	s.events.Broadcast(Event{Type: EventMessageDeleted, ChatroomId: msgRes.Value.ChatroomId, UserId: userId})
	s.writeJson(w, http.StatusNoContent, nil)
}
