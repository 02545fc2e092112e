package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-results/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name is already in use")
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetByName(ctx context.Context, exec SQLExecutor, name string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `INSERT INTO teams (name) VALUES ($1) RETURNING id, created_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query, team.Name).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == "teams_name_key" {
			return ErrTeamNameConflict
		}
		return fmt.Errorf("failed to create team %q: %w", team.Name, err)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, created_at FROM teams WHERE id = $1`
	return r.findOne(ctx, r.db, query, id)
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, exec SQLExecutor, name string) (*models.Team, error) {
	query := `SELECT id, name, created_at FROM teams WHERE name = $1`
	return r.findOne(ctx, executorOrDefault(exec, r.db), query, name)
}

func (r *postgresTeamRepository) findOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.Team, error) {
	var team models.Team
	err := exec.QueryRowContext(ctx, query, args...).Scan(&team.ID, &team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return &team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `SELECT id, name, created_at FROM teams ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan team: %w", scanErr)
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during team rows iteration: %w", err)
	}
	return teams, nil
}

// Delete removes the team; players and matches go with it via ON DELETE CASCADE.
func (r *postgresTeamRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := executorOrDefault(exec, r.db).ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}
