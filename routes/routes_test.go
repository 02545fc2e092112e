package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/tournament-results/handlers"
	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/services"
	"github.com/go-chi/chi/v5"
)

type stubTournaments struct{}

func (stubTournaments) ListTournaments(context.Context) ([]models.Tournament, error) {
	return []models.Tournament{{ID: 1, Name: "Fall Classic 2024"}}, nil
}

func (stubTournaments) GetTournament(_ context.Context, id int) (*models.Tournament, error) {
	if id != 1 {
		return nil, services.ErrTournamentNotFound
	}
	return &models.Tournament{ID: 1, Name: "Fall Classic 2024"}, nil
}

type stubTeams struct{}

func (stubTeams) ListTeams(context.Context) ([]models.Team, error) {
	return []models.Team{{ID: 3, Name: "Cyber Wolves"}}, nil
}

func (stubTeams) GetTeam(_ context.Context, id int) (*services.TeamDetails, error) {
	if id != 3 {
		return nil, services.ErrTeamNotFound
	}
	return &services.TeamDetails{Team: models.Team{ID: 3, Name: "Cyber Wolves"}}, nil
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	SetupRoutes(router,
		Options{AllowedOrigins: []string{"http://localhost:3000"}, Logger: logger},
		handlers.NewTournamentHandler(stubTournaments{}, logger),
		handlers.NewTeamHandler(stubTeams{}, logger),
		handlers.NewHealthHandler(okPinger{}, logger),
	)
	return router
}

func TestRoutes(t *testing.T) {
	router := newRouter()

	tests := []struct {
		method   string
		path     string
		want     int
		contains string
	}{
		{http.MethodGet, "/api/tournaments/", http.StatusOK, "Fall Classic 2024"},
		{http.MethodGet, "/api/tournaments", http.StatusOK, "Fall Classic 2024"},
		{http.MethodGet, "/api/tournaments/1/", http.StatusOK, `"matches"`},
		{http.MethodGet, "/api/tournaments/1", http.StatusOK, `"matches"`},
		{http.MethodGet, "/api/tournaments/2/", http.StatusNotFound, "could not be found"},
		{http.MethodGet, "/api/teams/", http.StatusOK, `"player_count": 0`},
		{http.MethodGet, "/api/teams", http.StatusOK, "Cyber Wolves"},
		{http.MethodGet, "/api/teams/3/", http.StatusOK, `"players": []`},
		{http.MethodGet, "/api/teams/999999/", http.StatusNotFound, "could not be found"},
		{http.MethodGet, "/api/teams/abc/", http.StatusNotFound, "could not be found"},
		{http.MethodGet, "/api/players/", http.StatusNotFound, "could not be found"},
		{http.MethodPost, "/api/teams/", http.StatusMethodNotAllowed, "POST method"},
		{http.MethodDelete, "/api/tournaments/1/", http.StatusMethodNotAllowed, "DELETE method"},
		{http.MethodGet, "/healthz", http.StatusOK, `"ok"`},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK, `"swagger": "2.0"`},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body %s does not contain %q", rec.Body.String(), tt.contains)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/teams/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allowed origin header = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/teams/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin allowed: %q", got)
	}
}
