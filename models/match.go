package models

// RoundName is a bracket stage. Matches sort by its stored text value,
// not by bracket depth.
type RoundName string

const (
	RoundFinals        RoundName = "finals"
	RoundSemifinals    RoundName = "semifinals"
	RoundQuarterfinals RoundName = "quarterfinals"
	RoundOf16          RoundName = "round_of_16"
)

// Rounds lists every round in declaration order.
var Rounds = []RoundName{RoundFinals, RoundSemifinals, RoundQuarterfinals, RoundOf16}

var roundDisplay = map[RoundName]string{
	RoundFinals:        "Finals",
	RoundSemifinals:    "Semifinals",
	RoundQuarterfinals: "Quarterfinals",
	RoundOf16:          "Round of 16",
}

func (r RoundName) IsValid() bool {
	_, ok := roundDisplay[r]
	return ok
}

// Display returns the human-readable label, or the raw value for unknown rounds.
func (r RoundName) Display() string {
	if d, ok := roundDisplay[r]; ok {
		return d
	}
	return string(r)
}

type Match struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	RoundName    RoundName `json:"round_name" db:"round_name"`
	MatchNumber  int       `json:"match_number" db:"match_number"`
	Team1ID      int       `json:"team1_id" db:"team1_id"`
	Team2ID      int       `json:"team2_id" db:"team2_id"`
	WinnerID     *int      `json:"winner_id,omitempty" db:"winner_id"`

	// Связанные сущности, загружаются вместе с матчем (JOIN)
	Tournament *Tournament `json:"tournament,omitempty" db:"-"`
	Team1      *Team       `json:"team1,omitempty" db:"-"`
	Team2      *Team       `json:"team2,omitempty" db:"-"`
	Winner     *Team       `json:"winner,omitempty" db:"-"`
}

// Involves reports whether the team played in the match.
func (m Match) Involves(teamID int) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// HasValidWinner: победитель либо не определён, либо один из участников.
func (m Match) HasValidWinner() bool {
	return m.WinnerID == nil || m.Involves(*m.WinnerID)
}
