package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/hero-registry/models"
)

var ErrTeamNotFound = errors.New("team not found")

type ListTeamsFilter struct {
	Offset *int
	Limit  *int
}

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Team, error)
	ExistsByID(ctx context.Context, exec SQLExecutor, id int) (bool, error)
	List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error)
	Update(ctx context.Context, exec SQLExecutor, team *models.Team) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type sqlTeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) TeamRepository {
	return &sqlTeamRepository{db: db}
}

func (r *sqlTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO teams (name, headquarters)
		VALUES ($1, $2)
		RETURNING id`

	return executor.QueryRowContext(ctx, query, team.Name, team.Headquarters).Scan(&team.ID)
}

func (r *sqlTeamRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Team, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, name, headquarters
		FROM teams
		WHERE id = $1`

	team := &models.Team{}
	err := executor.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.Headquarters)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *sqlTeamRepository) ExistsByID(ctx context.Context, exec SQLExecutor, id int) (bool, error) {
	executor := r.getExecutor(exec)
	query := `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`

	var exists bool
	if err := executor.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *sqlTeamRepository) List(ctx context.Context, filter ListTeamsFilter) ([]models.Team, error) {
	executor := r.getExecutor(nil)
	query := `
		SELECT id, name, headquarters
		FROM teams
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

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Headquarters); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *sqlTeamRepository) Update(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE teams
		SET name = $1, headquarters = $2
		WHERE id = $3`

	result, err := executor.ExecContext(ctx, query, team.Name, team.Headquarters, team.ID)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrTeamNotFound)
}

// Delete удаляет команду; heroes.team_id обнуляется на уровне схемы
// (ON DELETE SET NULL), герои остаются.
func (r *sqlTeamRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	query := `DELETE FROM teams WHERE id = $1`

	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return checkAffectedRows(result, ErrTeamNotFound)
}
