package services

import "errors"

// Ошибки сервисного слоя, используемые при маппинге в HTTP-ответы.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Ошибки загрузки фикстур
	ErrInvalidFixture = errors.New("invalid fixture")
)
