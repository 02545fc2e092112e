package models

import "testing"

func TestRoundDisplay(t *testing.T) {
	want := map[RoundName]string{
		RoundFinals:        "Finals",
		RoundSemifinals:    "Semifinals",
		RoundQuarterfinals: "Quarterfinals",
		RoundOf16:          "Round of 16",
	}
	for _, r := range Rounds {
		if !r.IsValid() {
			t.Errorf("round %q reported invalid", r)
		}
		if got := r.Display(); got != want[r] {
			t.Errorf("Display(%q) = %q, want %q", r, got, want[r])
		}
		if r.Display() != r.Display() {
			t.Errorf("Display(%q) is not stable", r)
		}
	}
	if len(Rounds) != len(want) {
		t.Fatalf("Rounds has %d entries, want %d", len(Rounds), len(want))
	}
}

func TestUnknownRound(t *testing.T) {
	r := RoundName("group_stage")
	if r.IsValid() {
		t.Fatal("unknown round reported valid")
	}
	if r.Display() != "group_stage" {
		t.Errorf("Display() = %q, want raw value", r.Display())
	}
}

func TestMatchHasValidWinner(t *testing.T) {
	one, two, three := 1, 2, 3
	tests := []struct {
		name   string
		winner *int
		want   bool
	}{
		{"undecided", nil, true},
		{"team1", &one, true},
		{"team2", &two, true},
		{"outsider", &three, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{Team1ID: 1, Team2ID: 2, WinnerID: tt.winner}
			if got := m.HasValidWinner(); got != tt.want {
				t.Errorf("HasValidWinner() = %v, want %v", got, tt.want)
			}
		})
	}
}
