package repositories_test

import (
	"context"
	"testing"

	"github.com/Dosada05/hero-registry/models"
	"github.com/Dosada05/hero-registry/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)
	ctx := context.Background()

	team := models.Team{Name: "Preventers", Headquarters: "Sister Margaret's Bar"}
	require.NoError(t, repo.Create(ctx, nil, &team))
	assert.NotZero(t, team.ID)

	got, err := repo.GetByID(ctx, nil, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, got.ID)
	assert.Equal(t, "Preventers", got.Name)
	assert.Equal(t, "Sister Margaret's Bar", got.Headquarters)
}

func TestTeamRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)

	_, err := repo.GetByID(context.Background(), nil, 9000)
	assert.ErrorIs(t, err, repositories.ErrTeamNotFound)
}

func TestTeamRepositoryExistsByID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)
	ctx := context.Background()

	team := mustCreateTeam(t, repo, "Preventers", "Sister Margaret's Bar")

	exists, err := repo.ExistsByID(ctx, nil, team.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, nil, 9000)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTeamRepositoryListOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)

	first := mustCreateTeam(t, repo, "Preventers", "Sister Margaret's Bar")
	second := mustCreateTeam(t, repo, "Z-Force", "ZHQ")

	teams, err := repo.List(context.Background(), repositories.ListTeamsFilter{})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, first.ID, teams[0].ID)
	assert.Equal(t, second.ID, teams[1].ID)
}

func TestTeamRepositoryListWindow(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)

	mustCreateTeam(t, repo, "Preventers", "Sister Margaret's Bar")
	second := mustCreateTeam(t, repo, "Z-Force", "ZHQ")
	mustCreateTeam(t, repo, "Wakaland Warriors", "Wakaland Capital City")

	teams, err := repo.List(context.Background(), repositories.ListTeamsFilter{
		Offset: intPtr(1),
		Limit:  intPtr(1),
	})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, second.ID, teams[0].ID)
}

func TestTeamRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)
	ctx := context.Background()

	team := mustCreateTeam(t, repo, "Preventers", "Sister Margaret's Bar")

	team.Name = "Avengers"
	require.NoError(t, repo.Update(ctx, nil, &team))

	got, err := repo.GetByID(ctx, nil, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Avengers", got.Name)
	assert.Equal(t, "Sister Margaret's Bar", got.Headquarters)
}

func TestTeamRepositoryUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)

	team := models.Team{ID: 9000, Name: "Avengers", Headquarters: "Tower"}
	err := repo.Update(context.Background(), nil, &team)
	assert.ErrorIs(t, err, repositories.ErrTeamNotFound)
}

func TestTeamRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)
	ctx := context.Background()

	team := mustCreateTeam(t, repo, "Z-Force", "ZHQ")
	require.NoError(t, repo.Delete(ctx, nil, team.ID))

	_, err := repo.GetByID(ctx, nil, team.ID)
	assert.ErrorIs(t, err, repositories.ErrTeamNotFound)
}

func TestTeamRepositoryDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewTeamRepository(db)

	err := repo.Delete(context.Background(), nil, 9000)
	assert.ErrorIs(t, err, repositories.ErrTeamNotFound)
}

func TestTeamRepositoryDeleteDetachesHeroes(t *testing.T) {
	db := newTestDB(t)
	teamRepo := repositories.NewTeamRepository(db)
	heroRepo := repositories.NewHeroRepository(db)
	ctx := context.Background()

	team := mustCreateTeam(t, teamRepo, "Z-Force", "ZHQ")
	hero := mustCreateHero(t, heroRepo, models.Hero{
		Name:       "Deadpond",
		SecretName: "Dive Wilson",
		TeamID:     intPtr(team.ID),
	})

	require.NoError(t, teamRepo.Delete(ctx, nil, team.ID))

	got, err := heroRepo.GetByID(ctx, nil, hero.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TeamID)
}
