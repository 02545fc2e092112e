package models

import "time"

// TournamentType соответствует CHECK-ограничению tournaments.tournament_type.
type TournamentType string

const (
	TournamentSingleElimination TournamentType = "single_elimination"
)

var tournamentTypeDisplay = map[TournamentType]string{
	TournamentSingleElimination: "Single Elimination",
}

func (t TournamentType) IsValid() bool {
	_, ok := tournamentTypeDisplay[t]
	return ok
}

func (t TournamentType) Display() string {
	return tournamentTypeDisplay[t]
}

// DateLayout is the wire and storage format of Tournament.Date.
const DateLayout = "2006-01-02"

type Tournament struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Type        TournamentType `json:"tournament_type" db:"tournament_type"`
	Date        time.Time      `json:"date" db:"date"`
	Description string         `json:"description" db:"description"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`

	Matches []Match `json:"matches,omitempty" db:"-"`
}

// DateString форматирует дату турнира без времени и зоны.
func (t Tournament) DateString() string {
	return t.Date.Format(DateLayout)
}
