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

type HeroService interface {
	CreateHero(ctx context.Context, input CreateHeroInput) (*models.Hero, error)
	GetHeroByID(ctx context.Context, id int) (*models.Hero, error)
	ListHeroes(ctx context.Context, input ListHeroesInput) ([]models.Hero, error)
	UpdateHero(ctx context.Context, id int, input UpdateHeroInput) (*models.Hero, error)
	DeleteHero(ctx context.Context, id int) error
}

type CreateHeroInput struct {
	Name       *string `json:"name" validate:"required"`
	SecretName *string `json:"secret_name" validate:"required"`
	Age        *int    `json:"age"`
	TeamID     *int    `json:"team_id"`
}

// UpdateHeroInput: все поля опциональны, применяются только переданные.
type UpdateHeroInput struct {
	Name       *string `json:"name"`
	SecretName *string `json:"secret_name"`
	Age        *int    `json:"age"`
	TeamID     *int    `json:"team_id"`
}

type ListHeroesInput struct {
	Offset *int `json:"offset" validate:"omitempty,gte=0"`
	Limit  *int `json:"limit" validate:"omitempty,gte=0,lte=100"`
}

type heroService struct {
	db       *sql.DB
	heroRepo repositories.HeroRepository
	teamRepo repositories.TeamRepository
}

func NewHeroService(db *sql.DB, heroRepo repositories.HeroRepository, teamRepo repositories.TeamRepository) HeroService {
	return &heroService{
		db:       db,
		heroRepo: heroRepo,
		teamRepo: teamRepo,
	}
}

func (s *heroService) CreateHero(ctx context.Context, input CreateHeroInput) (*models.Hero, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	hero := &models.Hero{
		Name:       *input.Name,
		SecretName: *input.SecretName,
		Age:        input.Age,
		TeamID:     input.TeamID,
	}

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if hero.TeamID != nil {
			if err := s.checkTeamReference(ctx, tx, *hero.TeamID); err != nil {
				return err
			}
		}
		return s.heroRepo.Create(ctx, tx, hero)
	})
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			return nil, err
		case errors.Is(err, repositories.ErrHeroTeamInvalid):
			return nil, errTeamReference()
		default:
			return nil, fmt.Errorf("%w: %w", ErrHeroCreateFailed, err)
		}
	}

	return hero, nil
}

func (s *heroService) GetHeroByID(ctx context.Context, id int) (*models.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrHeroNotFound) {
			return nil, ErrHeroNotFound
		}
		return nil, fmt.Errorf("failed to get hero by id %d: %w", id, err)
	}
	return hero, nil
}

func (s *heroService) ListHeroes(ctx context.Context, input ListHeroesInput) ([]models.Hero, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	filter := repositories.ListHeroesFilter{
		Offset: input.Offset,
		Limit:  input.Limit,
	}
	// Offset без Limit не допускается репозиторием, подставляем лимит по умолчанию.
	if filter.Offset != nil && filter.Limit == nil {
		limit := defaultListLimit
		filter.Limit = &limit
	}

	heroes, err := s.heroRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	if heroes == nil {
		return []models.Hero{}, nil
	}
	return heroes, nil
}

func (s *heroService) UpdateHero(ctx context.Context, id int, input UpdateHeroInput) (*models.Hero, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var hero *models.Hero
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := s.heroRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}

		// Применяем только переданные поля, id неизменяем.
		updated := false
		if input.Name != nil {
			current.Name = *input.Name
			updated = true
		}
		if input.SecretName != nil {
			current.SecretName = *input.SecretName
			updated = true
		}
		if input.Age != nil {
			current.Age = input.Age
			updated = true
		}
		if input.TeamID != nil {
			if err := s.checkTeamReference(ctx, tx, *input.TeamID); err != nil {
				return err
			}
			current.TeamID = input.TeamID
			updated = true
		}

		if updated {
			if err := s.heroRepo.Update(ctx, tx, current); err != nil {
				return err
			}
		}

		hero = current
		return nil
	})
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			return nil, err
		case errors.Is(err, repositories.ErrHeroNotFound):
			return nil, ErrHeroNotFound
		case errors.Is(err, repositories.ErrHeroTeamInvalid):
			return nil, errTeamReference()
		default:
			return nil, fmt.Errorf("%w (id: %d): %w", ErrHeroUpdateFailed, id, err)
		}
	}

	return hero, nil
}

func (s *heroService) DeleteHero(ctx context.Context, id int) error {
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.heroRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrHeroNotFound) {
			return ErrHeroNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrHeroDeleteFailed, id, err)
	}
	return nil
}

func (s *heroService) checkTeamReference(ctx context.Context, exec repositories.SQLExecutor, teamID int) error {
	exists, err := s.teamRepo.ExistsByID(ctx, exec, teamID)
	if err != nil {
		return fmt.Errorf("failed to check team %d: %w", teamID, err)
	}
	if !exists {
		return errTeamReference()
	}
	return nil
}

// Ссылка на несуществующую команду считается провалом валидации поля
// team_id, а не внутренней ошибкой.
func errTeamReference() validation.Errors {
	return validation.Errors{"team_id": "referenced team does not exist"}
}
