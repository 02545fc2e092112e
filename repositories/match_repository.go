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
	ErrMatchConflict          = errors.New("match number already used in this round of the tournament")
	ErrMatchTournamentInvalid = errors.New("match tournament reference is invalid")
	ErrMatchTeamInvalid       = errors.New("match team reference is invalid")
	ErrMatchWinnerInvalid     = errors.New("match winner must be one of the two teams")
	ErrMatchRoundInvalid      = errors.New("match round name is invalid")
	ErrMatchNumberInvalid     = errors.New("match number must be positive")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	// ListByTournament returns the tournament's matches with team1, team2 and winner loaded.
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error)
	// ListByTeam returns every match the team played as team1 or team2,
	// with tournament, team1, team2 and winner loaded.
	ListByTeam(ctx context.Context, teamID int) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, round_name, match_number, team1_id, team2_id, winner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		m.TournamentID, m.RoundName, m.MatchNumber, m.Team1ID, m.Team2ID, m.WinnerID,
	).Scan(&m.ID)

	return r.handleMatchError(err)
}

// Команды подтягиваются одним запросом через JOIN, без запроса на каждый матч.
const matchWithTeamsSelect = `
		SELECT
			m.id, m.tournament_id, m.round_name, m.match_number,
			m.team1_id, t1.name, m.team2_id, t2.name, m.winner_id, w.name`

const matchTeamsJoin = `
		FROM matches m
		JOIN teams t1 ON t1.id = m.team1_id
		JOIN teams t2 ON t2.id = m.team2_id
		LEFT JOIN teams w ON w.id = m.winner_id`

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Match, error) {
	query := matchWithTeamsSelect + matchTeamsJoin + `
		WHERE m.tournament_id = $1
		ORDER BY m.round_name ASC, m.match_number ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := scanMatchWithTeams(rows, &m); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) ListByTeam(ctx context.Context, teamID int) ([]models.Match, error) {
	query := matchWithTeamsSelect + `,
			tr.name, tr.tournament_type, tr.date` + matchTeamsJoin + `
		JOIN tournaments tr ON tr.id = m.tournament_id
		WHERE m.team1_id = $1 OR m.team2_id = $1
		ORDER BY tr.date DESC, m.round_name ASC, m.match_number ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for team %d: %w", teamID, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var (
			m  models.Match
			tr models.Tournament
		)
		if err := scanMatchWithTeams(rows, &m, &tr.Name, &tr.Type, &tr.Date); err != nil {
			return nil, err
		}
		tr.ID = m.TournamentID
		m.Tournament = &tr
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

// scanMatchWithTeams scans the matchWithTeamsSelect columns followed by extra.
func scanMatchWithTeams(s rowScanner, m *models.Match, extra ...interface{}) error {
	var (
		team1      models.Team
		team2      models.Team
		winnerID   sql.NullInt64
		winnerName sql.NullString
	)
	dest := []interface{}{
		&m.ID, &m.TournamentID, &m.RoundName, &m.MatchNumber,
		&team1.ID, &team1.Name, &team2.ID, &team2.Name, &winnerID, &winnerName,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return fmt.Errorf("failed to scan match: %w", err)
	}

	m.Team1ID, m.Team2ID = team1.ID, team2.ID
	m.Team1, m.Team2 = &team1, &team2
	m.WinnerID = nullableInt(winnerID)
	if m.WinnerID != nil {
		m.Winner = &models.Team{ID: *m.WinnerID, Name: winnerName.String}
	}
	return nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "matches_tournament_round_number_key" {
				return ErrMatchConflict
			}
		case "23503": // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_tournament_id_fkey":
				return ErrMatchTournamentInvalid
			case "matches_team1_id_fkey", "matches_team2_id_fkey", "matches_winner_id_fkey":
				return ErrMatchTeamInvalid
			}
		case "23514": // check_violation
			switch pqErr.Constraint {
			case "matches_winner_check":
				return ErrMatchWinnerInvalid
			case "matches_round_name_check":
				return ErrMatchRoundInvalid
			case "matches_match_number_check":
				return ErrMatchNumberInvalid
			}
		}
	}
	return fmt.Errorf("failed to create match: %w", err)
}
