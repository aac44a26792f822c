// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"resabot/internal/app"
	"resabot/internal/domain"
)

// Handlers wires the fulfillment engine and the optional chat audit log
// into the router. Logs may be nil (audit disabled).
type Handlers struct {
	Engine *app.Engine
	Logs   domain.ChatLogRepository
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "online", "service": "resabot"})
	})
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api/chat", h.chat)
	s.mux.Get("/api/chat/intents", h.intents)
	s.mux.Get("/api/chat/logs", h.chatLogs)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid message", "message is required")
		return
	}

	caller := domain.CallerContext{UserID: req.UserID, Token: req.Token, Role: req.Role}
	reply := h.Engine.Process(r.Context(), req.Message, caller)

	// Best-effort audit write; never blocks the reply.
	if h.Logs != nil {
		entry := domain.ChatLog{
			UserID:  optStr(req.UserID),
			Role:    optStr(req.Role),
			Intent:  string(reply.Intent),
			Message: req.Message,
			Reply:   reply.Message,
		}
		if err := h.Logs.Record(r.Context(), entry); err != nil {
			log.Warn().Err(err).Msg("chat audit write failed")
		}
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *Handlers) intents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"intents": app.Catalog()})
}

// chatLogs exposes recent audit entries to admins. Role comes from the
// platform's API gateway headers; the gateway has already verified the JWT.
func (h *Handlers) chatLogs(w http.ResponseWriter, r *http.Request) {
	if h.Logs == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "audit log disabled")
		return
	}
	if r.Header.Get("X-User-Role") != domain.RoleAdmin {
		writeProblem(w, http.StatusForbidden, "Forbidden", "admin role required")
		return
	}

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	entries, err := h.Logs.ListRecent(r.Context(), limit)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not read audit log")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"logs": entries})
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
