package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/parlorchat/go-parlor/internal/config"
	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/stats"
)

const (
	metricAccountsCreated  = "AccountsCreated"
	metricChatroomsCreated = "ChatroomsCreated"
	metricMessagesCreated  = "MessagesCreated"
	metricActiveClients    = "ActiveClients"
)

type ParlorApp struct {
	log            *log.Logger
	db             database.ParlorRepository
	mux            *http.Server
	events         *EventHub
	stats          stats.StatsProvider
	signingKey     []byte
	allowedOrigins []string
}

func NewParlorApp(mux *http.ServeMux, logger *log.Logger, db database.ParlorRepository, st stats.StatsProvider, cfg *config.Config) *ParlorApp {
	s := &ParlorApp{
		log:            logger,
		db:             db,
		events:         NewEventHub(logger),
		stats:          st,
		signingKey:     cfg.SigningKey,
		allowedOrigins: cfg.AllowedOrigins,
	}

	if st != nil {
		st.RegisterMetric(metricAccountsCreated)
		st.RegisterMetric(metricChatroomsCreated)
		st.RegisterMetric(metricMessagesCreated)
		st.RegisterMetric(metricActiveClients)
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("POST /api/auth/register", s.createAccount)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/session", s.authMiddleware(s.session))
	mux.Handle("GET /api/auth/logout", s.authMiddleware(s.logout))
	mux.Handle("/api/account", s.authMiddleware(s.account))
	mux.Handle("GET /api/account/chatrooms", s.authMiddleware(s.getAccountChatrooms))
	mux.Handle("POST /api/chatrooms", s.authMiddleware(s.createChatroom))
	mux.Handle("GET /api/chatrooms", s.authMiddleware(s.getChatroom))
	mux.Handle("PUT /api/chatrooms", s.authMiddleware(s.updateChatroom))
	mux.Handle("DELETE /api/chatrooms", s.authMiddleware(s.deleteChatroom))
	mux.Handle("GET /api/chatrooms/members", s.authMiddleware(s.getChatroomMembers))
	mux.Handle("GET /api/subscriptions", s.authMiddleware(s.getSubscriptions))
	mux.Handle("POST /api/subscriptions", s.authMiddleware(s.createSubscription))
	mux.Handle("DELETE /api/subscriptions", s.authMiddleware(s.deleteSubscription))
	mux.Handle("POST /api/admins", s.authMiddleware(s.createAdmin))
	mux.Handle("DELETE /api/admins", s.authMiddleware(s.deleteAdmin))
	mux.Handle("POST /api/bans", s.authMiddleware(s.createBan))
	mux.Handle("DELETE /api/bans", s.authMiddleware(s.deleteBan))
	mux.Handle("GET /api/messages", s.authMiddleware(s.getMessages))
	mux.Handle("POST /api/messages", s.authMiddleware(s.createMessage))
	mux.Handle("PUT /api/messages", s.authMiddleware(s.updateMessage))
	mux.Handle("DELETE /api/messages", s.authMiddleware(s.deleteMessage))
	mux.HandleFunc("GET /api/security-questions", s.getSecurityQuestions)
	mux.Handle("GET /api/account/security-questions", s.authMiddleware(s.getAccountSecurityQuestions))
	mux.Handle("GET /ws", s.authMiddleware(s.serveWs))

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *ParlorApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *ParlorApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	s.events.Close()
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *ParlorApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
