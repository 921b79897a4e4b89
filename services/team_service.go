package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/hero-registry/models"
	"github.com/Dosada05/hero-registry/repositories"
	"github.com/Dosada05/hero-registry/validation"
)

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, input ListTeamsInput) ([]models.Team, error)
	ListTeamHeroes(ctx context.Context, teamID int) ([]models.Hero, error)
	UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}

type CreateTeamInput struct {
	Name         *string `json:"name" validate:"required"`
	Headquarters *string `json:"headquarters" validate:"required"`
}

type UpdateTeamInput struct {
	Name         *string `json:"name"`
	Headquarters *string `json:"headquarters"`
}

type ListTeamsInput struct {
	Offset *int `json:"offset" validate:"omitempty,gte=0"`
	Limit  *int `json:"limit" validate:"omitempty,gte=0,lte=100"`
}

type teamService struct {
	db       *sql.DB
	teamRepo repositories.TeamRepository
	heroRepo repositories.HeroRepository
}

func NewTeamService(db *sql.DB, teamRepo repositories.TeamRepository, heroRepo repositories.HeroRepository) TeamService {
	return &teamService{
		db:       db,
		teamRepo: teamRepo,
		heroRepo: heroRepo,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:         *input.Name,
		Headquarters: *input.Headquarters,
	}

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.teamRepo.Create(ctx, tx, team)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamCreateFailed, err)
	}

	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context, input ListTeamsInput) ([]models.Team, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	filter := repositories.ListTeamsFilter{
		Offset: input.Offset,
		Limit:  input.Limit,
	}
	if filter.Offset != nil && filter.Limit == nil {
		limit := defaultListLimit
		filter.Limit = &limit
	}

	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) ListTeamHeroes(ctx context.Context, teamID int) ([]models.Hero, error) {
	exists, err := s.teamRepo.ExistsByID(ctx, nil, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team %d: %w", teamID, err)
	}
	if !exists {
		return nil, ErrTeamNotFound
	}

	heroes, err := s.heroRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes of team %d: %w", teamID, err)
	}
	if heroes == nil {
		return []models.Hero{}, nil
	}
	return heroes, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var team *models.Team
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := s.teamRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}

		updated := false
		if input.Name != nil {
			current.Name = *input.Name
			updated = true
		}
		if input.Headquarters != nil {
			current.Headquarters = *input.Headquarters
			updated = true
		}

		if updated {
			if err := s.teamRepo.Update(ctx, tx, current); err != nil {
				return err
			}
		}

		team = current
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTeamUpdateFailed, id, err)
	}

	return team, nil
}

// DeleteTeam удаляет команду, герои остаются без team_id (схема: ON DELETE SET NULL).
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.teamRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrTeamDeleteFailed, id, err)
	}
	return nil
}
