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
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentInvalidType = errors.New("invalid tournament type")
)

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	GetByName(ctx context.Context, exec SQLExecutor, name string) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, tournament_type, date, description, created_at`

func (r *postgresTournamentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, tournament_type, date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		t.Name, t.Type, t.Date, t.Description,
	).Scan(&t.ID, &t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	return r.findOne(ctx, r.db, query, id)
}

// GetByName returns the oldest tournament with that name; names are not unique.
func (r *postgresTournamentRepository) GetByName(ctx context.Context, exec SQLExecutor, name string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE name = $1 ORDER BY id ASC LIMIT 1`
	return r.findOne(ctx, executorOrDefault(exec, r.db), query, name)
}

func (r *postgresTournamentRepository) findOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.Tournament, error) {
	t := &models.Tournament{}
	if err := scanTournament(exec.QueryRowContext(ctx, query, args...), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY date DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := scanTournament(rows, &t); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", scanErr)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

// Delete removes the tournament together with its matches (ON DELETE CASCADE).
func (r *postgresTournamentRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := executorOrDefault(exec, r.db).ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func scanTournament(s rowScanner, t *models.Tournament) error {
	return s.Scan(&t.ID, &t.Name, &t.Type, &t.Date, &t.Description, &t.CreatedAt)
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" && pqErr.Constraint == "tournaments_type_check" {
		return ErrTournamentInvalidType
	}
	return fmt.Errorf("failed to create tournament: %w", err)
}
