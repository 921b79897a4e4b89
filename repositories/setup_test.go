package repositories_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/hero-registry/models"
	"github.com/Dosada05/hero-registry/repositories"
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

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// Одна in-memory база на весь пул.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return db
}

func mustCreateTeam(t *testing.T, repo repositories.TeamRepository, name, headquarters string) models.Team {
	t.Helper()

	team := models.Team{Name: name, Headquarters: headquarters}
	require.NoError(t, repo.Create(context.Background(), nil, &team))
	return team
}

func mustCreateHero(t *testing.T, repo repositories.HeroRepository, hero models.Hero) models.Hero {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), nil, &hero))
	return hero
}

func intPtr(v int) *int { return &v }
