// Package fixtures describes the seed data format: teams with rosters and
// tournaments whose matches reference teams by name.
package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Dosada05/tournament-results/models"
)

//go:embed default.json
var defaultFixture []byte

type Fixture struct {
	Teams       []Team       `json:"teams"`
	Tournaments []Tournament `json:"tournaments"`
}

type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

type Player struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Tournament struct {
	Name        string                `json:"name"`
	Type        models.TournamentType `json:"tournament_type"`
	Date        string                `json:"date"`
	Description string                `json:"description"`
	Matches     []Match               `json:"matches"`
}

type Match struct {
	RoundName   models.RoundName `json:"round_name"`
	MatchNumber int              `json:"match_number"`
	Team1       string           `json:"team1"`
	Team2       string           `json:"team2"`
	Winner      string           `json:"winner,omitempty"`
}

// ParsedDate returns Date in UTC midnight.
func (t Tournament) ParsedDate() (time.Time, error) {
	return time.Parse(models.DateLayout, t.Date)
}

// Default returns the bundled fixture: eight teams and the four 2024 tournaments.
func Default() (*Fixture, error) {
	return Parse(bytes.NewReader(defaultFixture))
}

// Parse decodes and validates a fixture document.
func Parse(r io.Reader) (*Fixture, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("fixture must contain a single JSON document")
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every problem found, joined into one error.
func (f *Fixture) Validate() error {
	var errs []error

	teams := make(map[string]bool, len(f.Teams))
	for i, t := range f.Teams {
		switch {
		case t.Name == "":
			errs = append(errs, fmt.Errorf("teams[%d]: name is required", i))
		case teams[t.Name]:
			errs = append(errs, fmt.Errorf("teams[%d]: duplicate team name %q", i, t.Name))
		}
		teams[t.Name] = true
		for j, p := range t.Players {
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("teams[%d].players[%d]: name is required", i, j))
			}
		}
	}

	for i, tr := range f.Tournaments {
		at := fmt.Sprintf("tournaments[%d]", i)
		if tr.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", at))
		}
		if !tr.Type.IsValid() {
			errs = append(errs, fmt.Errorf("%s: unknown tournament type %q", at, tr.Type))
		}
		if _, err := tr.ParsedDate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: date %q is not YYYY-MM-DD", at, tr.Date))
		}

		slots := make(map[string]bool, len(tr.Matches))
		for j, m := range tr.Matches {
			at := fmt.Sprintf("%s.matches[%d]", at, j)
			if !m.RoundName.IsValid() {
				errs = append(errs, fmt.Errorf("%s: unknown round %q", at, m.RoundName))
			}
			if m.MatchNumber <= 0 {
				errs = append(errs, fmt.Errorf("%s: match_number must be positive", at))
			}
			slot := fmt.Sprintf("%s#%d", m.RoundName, m.MatchNumber)
			if slots[slot] {
				errs = append(errs, fmt.Errorf("%s: duplicate %s match %d", at, m.RoundName, m.MatchNumber))
			}
			slots[slot] = true

			for _, name := range []string{m.Team1, m.Team2} {
				if !teams[name] {
					errs = append(errs, fmt.Errorf("%s: unknown team %q", at, name))
				}
			}
			if m.Team1 == m.Team2 {
				errs = append(errs, fmt.Errorf("%s: team %q cannot play itself", at, m.Team1))
			}
			if m.Winner != "" && m.Winner != m.Team1 && m.Winner != m.Team2 {
				errs = append(errs, fmt.Errorf("%s: winner %q is neither %q nor %q", at, m.Winner, m.Team1, m.Team2))
			}
		}
	}

	return errors.Join(errs...)
}
