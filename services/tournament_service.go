package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/repositories"
)

type TournamentService interface {
	// ListTournaments returns every tournament, newest date first, without matches.
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	// GetTournament returns the tournament with all matches and their teams loaded.
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, matchRepo repositories.MatchRepository) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
	}
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for tournament %d: %w", id, err)
	}
	tournament.Matches = matches

	return tournament, nil
}
