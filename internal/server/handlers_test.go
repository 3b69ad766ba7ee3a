package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arvindrk/eatdecider/internal/engine"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/arvindrk/eatdecider/internal/repositories"
	"github.com/arvindrk/eatdecider/internal/repositories/memory"
	"github.com/rs/zerolog"
)

func testConfig() *models.Config {
	return &models.Config{
		Server: models.ServerConfig{Addr: ":0"},
		Fees: models.FeeConfig{
			Currency:              "₹",
			PackagingFee:          5.0,
			BaseDeliveryFee:       20.0,
			FarDeliveryFee:        35.0,
			FreeDeliveryThreshold: 500.0,
			SmallOrderThreshold:   100.0,
			SmallOrderFee:         15.0,
			PlatformFeeRate:       0.04,
			TaxRate:               0.05,
		},
		Scoring: models.ScoringConfig{
			Safe:      models.Weights{Rating: 0.50, Eta: 0.25, Spice: 0.15, Value: 0.10},
			Value:     models.Weights{Value: 0.50, Rating: 0.30, Eta: 0.10, Spice: 0.10},
			Adventure: models.Weights{Novelty: 0.40, Spice: 0.35, Rating: 0.15, Value: 0.10},
			General:   models.Weights{Rating: 0.45, Value: 0.35, Novelty: 0.20},

			NoveltyHalfLifeHours: 72,
			MinAdventureRating:   3.0,
			AdventureSpiceLift:   1.5,
		},
		Kafka: models.KafkaConfig{Topic: "feedback_events"},
	}
}

func testItems() []models.Item {
	return []models.Item{
		{ID: "A", Restaurant: "Biryani Mahal", Name: "Veg Thali", Cuisine: "Indian",
			BasePrice: 150, Rating: 4.5, EtaMin: 20, Veg: true, Spice: 2, OilLevel: models.OilMedium, Zone: "Indiranagar"},
		{ID: "B", Restaurant: "Thai Tanic", Name: "Green Curry", Cuisine: "Thai",
			BasePrice: 250, Rating: 4.0, EtaMin: 25, Veg: true, Spice: 4, OilLevel: models.OilMedium, Zone: "Indiranagar"},
	}
}

func newTestServer(t *testing.T, feedback repositories.FeedbackRepository) *Server {
	t.Helper()
	cfg := testConfig()
	catalog := memory.NewCatalog(testItems())
	eng := engine.New(cfg, catalog, feedback, zerolog.Nop())
	return New(cfg, eng, catalog, zerolog.Nop())
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())
	w := doRequest(s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestMenu(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())
	w := doRequest(s, http.MethodGet, "/menu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Items []models.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("got %d items, want 2", len(resp.Items))
	}
}

func TestRecommendBundle(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())
	w := doRequest(s, http.MethodGet, "/recommend?budget=300&veg_only=true&spice=2&eta_limit=30&novelty=0.3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Picks) != 3 {
		t.Errorf("got %d picks, want 3", len(resp.Picks))
	}
}

func TestRecommendRankedList(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())
	w := doRequest(s, http.MethodGet, "/recommend?budget=300&limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Picks) != 1 || resp.Picks[0].Rank != 1 {
		t.Errorf("unexpected picks: %+v", resp.Picks)
	}
	if resp.TotalCandidates != 2 {
		t.Errorf("total_candidates = %d, want 2", resp.TotalCandidates)
	}
}

func TestRecommendValidation(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())

	for _, target := range []string{
		"/recommend",
		"/recommend?budget=abc",
		"/recommend?budget=300&spice=9",
		"/recommend?budget=300&limit=0",
	} {
		if w := doRequest(s, http.MethodGet, target, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
		}
	}
}

func TestFeedbackRecorded(t *testing.T) {
	feedback := memory.NewFeedbackLog()
	s := newTestServer(t, feedback)

	w := doRequest(s, http.MethodPost, "/feedback", `{"item_id":"A","outcome":"selected"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	events, err := feedback.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ItemID != "A" {
		t.Errorf("event not stored: %+v", events)
	}
}

func TestFeedbackValidation(t *testing.T) {
	s := newTestServer(t, memory.NewFeedbackLog())

	if w := doRequest(s, http.MethodPost, "/feedback", `{"outcome":"selected"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing item_id: status = %d, want 400", w.Code)
	}
	if w := doRequest(s, http.MethodPost, "/feedback", `{"item_id":"A","outcome":"devoured"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad outcome: status = %d, want 400", w.Code)
	}
	if w := doRequest(s, http.MethodPost, "/feedback", `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", w.Code)
	}
}

type failingFeedback struct{}

func (f *failingFeedback) Append(ctx context.Context, ev models.FeedbackEvent) error {
	return errors.New("disk full")
}
func (f *failingFeedback) ListByUser(ctx context.Context, userKey string) ([]models.FeedbackEvent, error) {
	return nil, errors.New("disk full")
}
func (f *failingFeedback) ListAll(ctx context.Context) ([]models.FeedbackEvent, error) {
	return nil, errors.New("disk full")
}

func TestFeedbackWriteFailureDegrades(t *testing.T) {
	s := newTestServer(t, &failingFeedback{})

	w := doRequest(s, http.MethodPost, "/feedback", `{"item_id":"A","outcome":"selected"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not recorded") {
		t.Errorf("body %q does not surface the degraded write", w.Body.String())
	}
}

func TestUserKeyHeader(t *testing.T) {
	feedback := memory.NewFeedbackLog()
	s := newTestServer(t, feedback)

	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(`{"item_id":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Key", "user-42")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	events, _ := feedback.ListAll(context.Background())
	if len(events) != 1 || events[0].UserKey != "user-42" {
		t.Errorf("user key not honoured: %+v", events)
	}
}
