package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/hero-registry/models"
	"github.com/lib/pq"
)

var (
	ErrHeroNotFound    = errors.New("hero not found")
	ErrHeroTeamInvalid = errors.New("hero team reference invalid")
)

// ListHeroesFilter задаёт необязательное окно выборки. Offset без Limit не
// допускается (SQLite не принимает OFFSET без LIMIT), сервис это гарантирует.
type ListHeroesFilter struct {
	Offset *int
	Limit  *int
}

type HeroRepository interface {
	Create(ctx context.Context, exec SQLExecutor, hero *models.Hero) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Hero, error)
	List(ctx context.Context, filter ListHeroesFilter) ([]models.Hero, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.Hero, error)
	Update(ctx context.Context, exec SQLExecutor, hero *models.Hero) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type sqlHeroRepository struct {
	db *sql.DB
}

func NewHeroRepository(db *sql.DB) HeroRepository {
	return &sqlHeroRepository{db: db}
}

func (r *sqlHeroRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlHeroRepository) Create(ctx context.Context, exec SQLExecutor, hero *models.Hero) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO heroes (name, secret_name, age, team_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		hero.Name,
		hero.SecretName,
		hero.Age,
		hero.TeamID,
	).Scan(&hero.ID)

	return r.handleHeroError(err)
}

func (r *sqlHeroRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Hero, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, name, secret_name, age, team_id
		FROM heroes
		WHERE id = $1`

	hero := &models.Hero{}
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&hero.ID, &hero.Name, &hero.SecretName, &hero.Age, &hero.TeamID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHeroNotFound
		}
		return nil, err
	}
	return hero, nil
}

func (r *sqlHeroRepository) List(ctx context.Context, filter ListHeroesFilter) ([]models.Hero, error) {
	executor := r.getExecutor(nil)
	query := `
		SELECT id, name, secret_name, age, team_id
		FROM heroes
		ORDER BY id ASC`

	args := []interface{}{}
	argID := 1

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, *filter.Limit)
		argID++
	}
	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, *filter.Offset)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHeroes(rows)
}

func (r *sqlHeroRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.Hero, error) {
	executor := r.getExecutor(nil)
	query := `
		SELECT id, name, secret_name, age, team_id
		FROM heroes
		WHERE team_id = $1
		ORDER BY id ASC`

	rows, err := executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHeroes(rows)
}

func (r *sqlHeroRepository) Update(ctx context.Context, exec SQLExecutor, hero *models.Hero) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE heroes
		SET name = $1, secret_name = $2, age = $3, team_id = $4
		WHERE id = $5`

	result, err := executor.ExecContext(ctx, query,
		hero.Name,
		hero.SecretName,
		hero.Age,
		hero.TeamID,
		hero.ID,
	)
	if err != nil {
		return r.handleHeroError(err)
	}

	return checkAffectedRows(result, ErrHeroNotFound)
}

func (r *sqlHeroRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	query := `DELETE FROM heroes WHERE id = $1`

	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrHeroNotFound)
}

// handleHeroError переводит ошибки драйвера в sentinel-ошибки репозитория.
// FK на team_id ловится сервисом заранее, маппинг 23503 остаётся подстраховкой.
func (r *sqlHeroRepository) handleHeroError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
		return ErrHeroTeamInvalid
	}
	return err
}

func scanHeroes(rows *sql.Rows) ([]models.Hero, error) {
	heroes := make([]models.Hero, 0)
	for rows.Next() {
		var hero models.Hero
		if err := rows.Scan(&hero.ID, &hero.Name, &hero.SecretName, &hero.Age, &hero.TeamID); err != nil {
			return nil, err
		}
		heroes = append(heroes, hero)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return heroes, nil
}
