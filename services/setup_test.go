package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/hero-registry/models"
	"github.com/Dosada05/hero-registry/repositories"
	"github.com/Dosada05/hero-registry/services"
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

// serviceEnv собирает сервисы поверх настоящих репозиториев и sqlite в памяти,
// без моков: поведение транзакций и ссылок проверяется на живом хранилище.
type serviceEnv struct {
	db          *sql.DB
	heroRepo    repositories.HeroRepository
	teamRepo    repositories.TeamRepository
	heroService services.HeroService
	teamService services.TeamService
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// Одна in-memory база на весь пул.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	heroRepo := repositories.NewHeroRepository(db)
	teamRepo := repositories.NewTeamRepository(db)

	return &serviceEnv{
		db:          db,
		heroRepo:    heroRepo,
		teamRepo:    teamRepo,
		heroService: services.NewHeroService(db, heroRepo, teamRepo),
		teamService: services.NewTeamService(db, teamRepo, heroRepo),
	}
}

func (e *serviceEnv) seedTeam(t *testing.T, name, headquarters string) models.Team {
	t.Helper()

	team := models.Team{Name: name, Headquarters: headquarters}
	require.NoError(t, e.teamRepo.Create(context.Background(), nil, &team))
	return team
}

func (e *serviceEnv) seedHero(t *testing.T, hero models.Hero) models.Hero {
	t.Helper()

	require.NoError(t, e.heroRepo.Create(context.Background(), nil, &hero))
	return hero
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
