package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/tournament-results/models"
	"github.com/Dosada05/tournament-results/repositories"
)

// memStore backs all fake repositories so joins can be resolved in memory.
type memStore struct {
	mu          sync.Mutex
	nextID      int
	teams       map[int]models.Team
	players     map[int]models.Player
	tournaments map[int]models.Tournament
	matches     map[int]models.Match

	rosterQueries int
	failMatches   error
}

func newMemStore() *memStore {
	return &memStore{
		teams:       map[int]models.Team{},
		players:     map[int]models.Player{},
		tournaments: map[int]models.Tournament{},
		matches:     map[int]models.Match{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

type fakeTeamRepo struct{ s *memStore }

func (r fakeTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.teams {
		if existing.Name == t.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	t.ID = r.s.id()
	t.CreatedAt = time.Now()
	r.s.teams[t.ID] = *t
	return nil
}

func (r fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &t, nil
}

func (r fakeTeamRepo) GetByName(_ context.Context, _ repositories.SQLExecutor, name string) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	teams := make([]models.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (r fakeTeamRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.s.teams, id)
	for pid, p := range r.s.players {
		if p.TeamID == id {
			delete(r.s.players, pid)
		}
	}
	for mid, m := range r.s.matches {
		if m.Involves(id) {
			delete(r.s.matches, mid)
		}
	}
	return nil
}

type fakePlayerRepo struct{ s *memStore }

func (r fakePlayerRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[p.TeamID]; !ok {
		return repositories.ErrPlayerTeamInvalid
	}
	p.ID = r.s.id()
	r.s.players[p.ID] = *p
	return nil
}

func (r fakePlayerRepo) ListByTeam(_ context.Context, teamID int) ([]models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	players := make([]models.Player, 0)
	for _, p := range r.s.players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (r fakePlayerRepo) ListByTeamIDs(ctx context.Context, teamIDs []int) (map[int][]models.Player, error) {
	r.s.mu.Lock()
	r.s.rosterQueries++
	r.s.mu.Unlock()
	byTeam := map[int][]models.Player{}
	for _, id := range teamIDs {
		players, _ := r.ListByTeam(ctx, id)
		if len(players) > 0 {
			byTeam[id] = players
		}
	}
	return byTeam, nil
}

type fakeTournamentRepo struct{ s *memStore }

func (r fakeTournamentRepo) Create(_ context.Context, _ repositories.SQLExecutor, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.id()
	r.s.tournaments[t.ID] = *t
	return nil
}

func (r fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r fakeTournamentRepo) GetByName(_ context.Context, _ repositories.SQLExecutor, name string) (*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tournaments {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (r fakeTournamentRepo) List(_ context.Context) ([]models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]models.Tournament, 0, len(r.s.tournaments))
	for _, t := range r.s.tournaments {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (r fakeTournamentRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.s.tournaments, id)
	for mid, m := range r.s.matches {
		if m.TournamentID == id {
			delete(r.s.matches, mid)
		}
	}
	return nil
}

type fakeMatchRepo struct{ s *memStore }

func (r fakeMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.matches {
		if existing.TournamentID == m.TournamentID && existing.RoundName == m.RoundName && existing.MatchNumber == m.MatchNumber {
			return repositories.ErrMatchConflict
		}
	}
	m.ID = r.s.id()
	r.s.matches[m.ID] = *m
	return nil
}

func (r fakeMatchRepo) resolve(m models.Match) models.Match {
	t1, t2 := r.s.teams[m.Team1ID], r.s.teams[m.Team2ID]
	m.Team1, m.Team2 = &t1, &t2
	if m.WinnerID != nil {
		w := r.s.teams[*m.WinnerID]
		m.Winner = &w
	}
	tr := r.s.tournaments[m.TournamentID]
	m.Tournament = &tr
	return m
}

func (r fakeMatchRepo) ListByTournament(_ context.Context, tournamentID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failMatches != nil {
		return nil, r.s.failMatches
	}
	list := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.TournamentID == tournamentID {
			list = append(list, r.resolve(m))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].RoundName != list[j].RoundName {
			return list[i].RoundName < list[j].RoundName
		}
		return list[i].MatchNumber < list[j].MatchNumber
	})
	return list, nil
}

func (r fakeMatchRepo) ListByTeam(_ context.Context, teamID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failMatches != nil {
		return nil, r.s.failMatches
	}
	list := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.Involves(teamID) {
			list = append(list, r.resolve(m))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.Tournament.Date.Equal(b.Tournament.Date) {
			return a.Tournament.Date.After(b.Tournament.Date)
		}
		if a.RoundName != b.RoundName {
			return a.RoundName < b.RoundName
		}
		return a.MatchNumber < b.MatchNumber
	})
	return list, nil
}
