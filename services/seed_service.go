package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-results/fixtures"
	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/repositories"
)

type SeedOptions struct {
	// Reset deletes the fixture's teams and tournaments (with everything
	// cascading from them) before loading.
	Reset bool
}

type SeedReport struct {
	TeamsCreated       int
	PlayersCreated     int
	TournamentsCreated int
	MatchesCreated     int
	TeamsDeleted       int
	TournamentsDeleted int
}

type SeedService interface {
	Seed(ctx context.Context, f *fixtures.Fixture, opts SeedOptions) (*SeedReport, error)
}

type seedService struct {
	db             *sql.DB
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger
}

func NewSeedService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) SeedService {
	return &seedService{
		db:             db,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

// Seed loads the fixture in a single transaction. Teams and tournaments that
// already exist (by name) are kept as is, their players and matches untouched.
func (s *seedService) Seed(ctx context.Context, f *fixtures.Fixture, opts SeedOptions) (*SeedReport, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	report := &SeedReport{}

	if opts.Reset {
		if err := s.reset(ctx, tx, f, report); err != nil {
			return nil, err
		}
	}

	teamIDs := make(map[string]int, len(f.Teams))
	for _, ft := range f.Teams {
		id, err := s.ensureTeam(ctx, tx, ft, report)
		if err != nil {
			return nil, err
		}
		teamIDs[ft.Name] = id
	}

	for _, ftr := range f.Tournaments {
		if err := s.ensureTournament(ctx, tx, ftr, teamIDs, report); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return report, nil
}

func (s *seedService) reset(ctx context.Context, tx *sql.Tx, f *fixtures.Fixture, report *SeedReport) error {
	for _, ftr := range f.Tournaments {
		// Имена турниров не уникальны, удаляем все совпадения
		for {
			existing, err := s.tournamentRepo.GetByName(ctx, tx, ftr.Name)
			if errors.Is(err, repositories.ErrTournamentNotFound) {
				break
			}
			if err != nil {
				return err
			}
			if err := s.tournamentRepo.Delete(ctx, tx, existing.ID); err != nil {
				return err
			}
			report.TournamentsDeleted++
			s.logger.Info("deleted tournament", slog.String("name", existing.Name), slog.Int("id", existing.ID))
		}
	}

	for _, ft := range f.Teams {
		existing, err := s.teamRepo.GetByName(ctx, tx, ft.Name)
		if errors.Is(err, repositories.ErrTeamNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.teamRepo.Delete(ctx, tx, existing.ID); err != nil {
			return err
		}
		report.TeamsDeleted++
		s.logger.Info("deleted team", slog.String("name", existing.Name), slog.Int("id", existing.ID))
	}
	return nil
}

func (s *seedService) ensureTeam(ctx context.Context, tx *sql.Tx, ft fixtures.Team, report *SeedReport) (int, error) {
	existing, err := s.teamRepo.GetByName(ctx, tx, ft.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repositories.ErrTeamNotFound) {
		return 0, err
	}

	team := &models.Team{Name: ft.Name}
	if err := s.teamRepo.Create(ctx, tx, team); err != nil {
		return 0, err
	}
	report.TeamsCreated++
	s.logger.Info("created team", slog.String("name", team.Name), slog.Int("id", team.ID))

	for _, fp := range ft.Players {
		player := &models.Player{TeamID: team.ID, Name: fp.Name, Role: fp.Role}
		if err := s.playerRepo.Create(ctx, tx, player); err != nil {
			return 0, err
		}
		report.PlayersCreated++
		s.logger.Debug("added player", slog.String("team", team.Name), slog.String("name", player.Name), slog.String("role", player.Role))
	}
	return team.ID, nil
}

func (s *seedService) ensureTournament(ctx context.Context, tx *sql.Tx, ftr fixtures.Tournament, teamIDs map[string]int, report *SeedReport) error {
	_, err := s.tournamentRepo.GetByName(ctx, tx, ftr.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrTournamentNotFound) {
		return err
	}

	date, err := ftr.ParsedDate()
	if err != nil {
		return fmt.Errorf("%w: tournament %q: %w", ErrInvalidFixture, ftr.Name, err)
	}
	tournament := &models.Tournament{
		Name:        ftr.Name,
		Type:        ftr.Type,
		Date:        date,
		Description: ftr.Description,
	}
	if err := s.tournamentRepo.Create(ctx, tx, tournament); err != nil {
		return err
	}
	report.TournamentsCreated++
	s.logger.Info("created tournament", slog.String("name", tournament.Name), slog.Int("id", tournament.ID))

	for _, fm := range ftr.Matches {
		match := &models.Match{
			TournamentID: tournament.ID,
			RoundName:    fm.RoundName,
			MatchNumber:  fm.MatchNumber,
			Team1ID:      teamIDs[fm.Team1],
			Team2ID:      teamIDs[fm.Team2],
		}
		if fm.Winner != "" {
			winnerID := teamIDs[fm.Winner]
			match.WinnerID = &winnerID
		}
		if !match.HasValidWinner() {
			return fmt.Errorf("%w: %s match %d of %q", repositories.ErrMatchWinnerInvalid, fm.RoundName, fm.MatchNumber, ftr.Name)
		}
		if err := s.matchRepo.Create(ctx, tx, match); err != nil {
			return err
		}
		report.MatchesCreated++
	}
	return nil
}
