package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/repositories"
	"golang.org/x/sync/errgroup"
)

type TeamService interface {
	// ListTeams returns all teams ordered by name with rosters loaded.
	ListTeams(ctx context.Context) ([]models.Team, error)
	// GetTeam returns the team with its roster and match history.
	GetTeam(ctx context.Context, id int) (*TeamDetails, error)
}

// TeamDetails is a team plus every match it played, newest tournament first.
type TeamDetails struct {
	Team    models.Team
	Matches []models.Match
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if len(teams) == 0 {
		return teams, nil
	}

	ids := make([]int, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
	}

	// Составы всех команд одним запросом
	rosters, err := s.playerRepo.ListByTeamIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load team rosters: %w", err)
	}
	for i := range teams {
		players := rosters[teams[i].ID]
		if players == nil {
			players = []models.Player{}
		}
		teams[i].Players = players
	}

	return teams, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int) (*TeamDetails, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	details := &TeamDetails{Team: *team}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		players, err := s.playerRepo.ListByTeam(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load roster of team %d: %w", id, err)
		}
		details.Team.Players = players
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByTeam(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load matches of team %d: %w", id, err)
		}
		details.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}
