package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Dosada05/hero-registry/handlers"
	"github.com/Dosada05/hero-registry/models"
	"github.com/Dosada05/hero-registry/repositories"
	"github.com/Dosada05/hero-registry/routes"
	"github.com/Dosada05/hero-registry/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE teams (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	headquarters TEXT NOT NULL
);

CREATE TABLE heroes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	secret_name TEXT NOT NULL,
	age INTEGER,
	team_id INTEGER REFERENCES teams (id) ON DELETE SET NULL
);
`

// testEnv поднимает полный стек (роутер, хендлеры, сервисы, репозитории)
// поверх in-memory SQLite. Репозитории доступны напрямую для проверки
// состояния хранилища в обход HTTP.
type testEnv struct {
	server   *httptest.Server
	db       *sql.DB
	heroRepo repositories.HeroRepository
	teamRepo repositories.TeamRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbConn, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// Одна in-memory база на весь пул.
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbConn.Close() })

	_, err = dbConn.Exec(testSchema)
	require.NoError(t, err)

	heroRepo := repositories.NewHeroRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)

	heroService := services.NewHeroService(dbConn, heroRepo, teamRepo)
	teamService := services.NewTeamService(dbConn, teamRepo, heroRepo)

	heroHandler := handlers.NewHeroHandler(heroService)
	teamHandler := handlers.NewTeamHandler(teamService)
	healthHandler := handlers.NewHealthHandler(dbConn)

	router := chi.NewRouter()
	routes.SetupRoutes(router, heroHandler, teamHandler, healthHandler)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		server:   server,
		db:       dbConn,
		heroRepo: heroRepo,
		teamRepo: teamRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(buf)
	}

	return e.send(t, method, path, reqBody)
}

// doRaw отправляет тело как есть, без сериализации (для сломанного JSON).
func (e *testEnv) doRaw(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	return e.send(t, method, path, strings.NewReader(body))
}

func (e *testEnv) send(t *testing.T, method, path string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, e.server.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// decodeValidationError разбирает конверт {"error": {поле: причина}}.
func decodeValidationError(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body struct {
		Error map[string]string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	return body.Error
}

func (e *testEnv) seedTeam(t *testing.T, name, headquarters string) models.Team {
	t.Helper()
	team := &models.Team{Name: name, Headquarters: headquarters}
	require.NoError(t, e.teamRepo.Create(context.Background(), nil, team))
	return *team
}

func (e *testEnv) seedHero(t *testing.T, hero models.Hero) models.Hero {
	t.Helper()
	require.NoError(t, e.heroRepo.Create(context.Background(), nil, &hero))
	return hero
}

func intPtr(v int) *int { return &v }

func itoa(id int) string { return strconv.Itoa(id) }
