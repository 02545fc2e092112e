package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-results/models"
	"github.com/lib/pq"
)

var ErrPlayerTeamInvalid = errors.New("player team reference is invalid")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	ListByTeam(ctx context.Context, teamID int) ([]models.Player, error)
	// ListByTeamIDs loads the rosters of many teams in one query, keyed by team id.
	ListByTeamIDs(ctx context.Context, teamIDs []int) (map[int][]models.Player, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Player) error {
	query := `
		INSERT INTO players (name, team_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query, p.Name, p.TeamID, p.Role).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" && pqErr.Constraint == "players_team_id_fkey" {
			return ErrPlayerTeamInvalid
		}
		return fmt.Errorf("failed to create player %q: %w", p.Name, err)
	}
	return nil
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `
		SELECT id, team_id, name, role, created_at
		FROM players
		WHERE team_id = $1
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) ListByTeamIDs(ctx context.Context, teamIDs []int) (map[int][]models.Player, error) {
	byTeam := make(map[int][]models.Player, len(teamIDs))
	if len(teamIDs) == 0 {
		return byTeam, nil
	}

	ids := make([]int64, len(teamIDs))
	for i, id := range teamIDs {
		ids[i] = int64(id)
	}

	query := `
		SELECT id, team_id, name, role, created_at
		FROM players
		WHERE team_id = ANY($1)
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list players for %d teams: %w", len(teamIDs), err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, err
		}
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return byTeam, nil
}

func scanPlayer(s rowScanner, p *models.Player) error {
	if err := s.Scan(&p.ID, &p.TeamID, &p.Name, &p.Role, &p.CreatedAt); err != nil {
		return fmt.Errorf("failed to scan player: %w", err)
	}
	return nil
}
