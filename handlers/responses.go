package handlers

import (
	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/services"
)

// Формы ответов API. Пустые списки всегда сериализуются как [].

type teamBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type teamListItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
}

type playerResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type matchResponse struct {
	ID           int              `json:"id"`
	RoundName    models.RoundName `json:"round_name"`
	RoundDisplay string           `json:"round_display"`
	MatchNumber  int              `json:"match_number"`
	Team1        *teamBrief       `json:"team1"`
	Team2        *teamBrief       `json:"team2"`
	Winner       *teamBrief       `json:"winner"`
}

type matchWithTournament struct {
	matchResponse
	TournamentID   int    `json:"tournament_id"`
	TournamentName string `json:"tournament_name"`
	TournamentDate string `json:"tournament_date"`
}

type tournamentListItem struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	TournamentType models.TournamentType `json:"tournament_type"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
}

type tournamentDetail struct {
	tournamentListItem
	Matches []matchResponse `json:"matches"`
}

type teamDetail struct {
	ID      int                   `json:"id"`
	Name    string                `json:"name"`
	Players []playerResponse      `json:"players"`
	Matches []matchWithTournament `json:"matches"`
}

func toTeamBrief(t *models.Team) *teamBrief {
	if t == nil {
		return nil
	}
	return &teamBrief{ID: t.ID, Name: t.Name}
}

func toMatchResponse(m models.Match) matchResponse {
	return matchResponse{
		ID:           m.ID,
		RoundName:    m.RoundName,
		RoundDisplay: m.RoundName.Display(),
		MatchNumber:  m.MatchNumber,
		Team1:        toTeamBrief(m.Team1),
		Team2:        toTeamBrief(m.Team2),
		Winner:       toTeamBrief(m.Winner),
	}
}

func toMatchWithTournament(m models.Match) matchWithTournament {
	resp := matchWithTournament{
		matchResponse: toMatchResponse(m),
		TournamentID:  m.TournamentID,
	}
	if m.Tournament != nil {
		resp.TournamentName = m.Tournament.Name
		resp.TournamentDate = m.Tournament.DateString()
	}
	return resp
}

func toTournamentListItem(t models.Tournament) tournamentListItem {
	return tournamentListItem{
		ID:             t.ID,
		Name:           t.Name,
		TournamentType: t.Type,
		Date:           t.DateString(),
		Description:    t.Description,
	}
}

func toTournamentList(list []models.Tournament) []tournamentListItem {
	items := make([]tournamentListItem, 0, len(list))
	for _, t := range list {
		items = append(items, toTournamentListItem(t))
	}
	return items
}

func toTournamentDetail(t *models.Tournament) tournamentDetail {
	matches := make([]matchResponse, 0, len(t.Matches))
	for _, m := range t.Matches {
		matches = append(matches, toMatchResponse(m))
	}
	return tournamentDetail{
		tournamentListItem: toTournamentListItem(*t),
		Matches:            matches,
	}
}

func toTeamList(teams []models.Team) []teamListItem {
	items := make([]teamListItem, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamListItem{ID: t.ID, Name: t.Name, PlayerCount: t.PlayerCount()})
	}
	return items
}

func toTeamDetail(d *services.TeamDetails) teamDetail {
	players := make([]playerResponse, 0, len(d.Team.Players))
	for _, p := range d.Team.Players {
		players = append(players, playerResponse{ID: p.ID, Name: p.Name, Role: p.Role})
	}
	matches := make([]matchWithTournament, 0, len(d.Matches))
	for _, m := range d.Matches {
		matches = append(matches, toMatchWithTournament(m))
	}
	return teamDetail{
		ID:      d.Team.ID,
		Name:    d.Team.Name,
		Players: players,
		Matches: matches,
	}
}
