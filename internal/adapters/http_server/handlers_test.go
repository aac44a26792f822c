package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "resabot/internal/adapters/http_server"
	"resabot/internal/app"
	"resabot/internal/domain"
)

// ---- stubs ----

type stubProps struct{}

func (stubProps) FetchAll(ctx context.Context) []domain.Property { return nil }
func (stubProps) Fetch(ctx context.Context, id string) (domain.Property, bool) {
	return domain.Property{}, false
}
func (stubProps) Delete(ctx context.Context, id, token string) domain.MutationResult {
	return domain.MutationResult{}
}

type stubResv struct{}

func (stubResv) FetchForUser(ctx context.Context, userID, token string) []domain.Reservation {
	return nil
}
func (stubResv) FetchForProperty(ctx context.Context, propertyID string) []domain.Reservation {
	return nil
}
func (stubResv) FetchAll(ctx context.Context, token string) []domain.Reservation { return nil }
func (stubResv) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) domain.Availability {
	return domain.Availability{Available: true}
}
func (stubResv) Create(ctx context.Context, r domain.NewReservation, token string) domain.MutationResult {
	return domain.MutationResult{}
}
func (stubResv) Delete(ctx context.Context, id, token string) domain.MutationResult {
	return domain.MutationResult{}
}

type memLogs struct{ entries []domain.ChatLog }

func (m *memLogs) Record(ctx context.Context, e domain.ChatLog) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *memLogs) ListRecent(ctx context.Context, limit int) ([]domain.ChatLog, error) {
	if len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func newTestServer(logs domain.ChatLogRepository) *httptest.Server {
	engine := app.NewEngine(stubProps{}, stubResv{}, nil, time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Engine: engine, Logs: logs})
	return httptest.NewServer(srv.Mux())
}

// ---- tests ----

func TestChat_Greeting(t *testing.T) {
	logs := &memLogs{}
	ts := newTestServer(logs)
	defer ts.Close()

	body := strings.NewReader(`{"message":"bonjour"}`)
	res, err := http.Post(ts.URL+"/api/chat", "application/json", body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var reply domain.Reply
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reply.Intent != domain.IntentGreeting || !strings.Contains(reply.Message, "Bonjour") {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	// audit entry was written
	if len(logs.entries) != 1 || logs.entries[0].Intent != "greeting" {
		t.Fatalf("audit entries: %+v", logs.entries)
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(`{"message":"  "}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestIntentsCatalog(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/chat/intents")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Intents []app.IntentExample `json:"intents"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Intents) == 0 || body.Intents[0].Name != "greeting" {
		t.Fatalf("unexpected catalog: %+v", body.Intents)
	}
}

func TestChatLogs_AdminGate(t *testing.T) {
	logs := &memLogs{entries: []domain.ChatLog{{Intent: "greeting", Message: "bonjour", Reply: "hi"}}}
	ts := newTestServer(logs)
	defer ts.Close()

	// no role header
	res, err := http.Get(ts.URL + "/api/chat/logs")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d, want 403", res.StatusCode)
	}

	// admin role header
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/chat/logs", nil)
	req.Header.Set("X-User-Role", "admin")
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", res.StatusCode)
	}
	var body struct {
		Logs []domain.ChatLog `json:"logs"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Logs) != 1 {
		t.Fatalf("logs: %+v", body.Logs)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}
