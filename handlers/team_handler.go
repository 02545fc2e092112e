package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-results/services"
)

type TeamHandler struct {
	teamService services.TeamService
	logger      *slog.Logger
}

func NewTeamHandler(ts services.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: ts,
		logger:      logger,
	}
}

// ListHandler godoc
// @Summary Список команд
// @Tags teams
// @Description Команды по алфавиту с количеством игроков.
// @Produce json
// @Success 200 {array} handlers.teamListItem
// @Router /api/teams/ [get]
func (h *TeamHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, toTeamList(teams), nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByIDHandler godoc
// @Summary Команда с составом и историей матчей
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} handlers.teamDetail
// @Failure 404 {object} map[string]string "Команда не найдена"
// @Router /api/teams/{teamID}/ [get]
func (h *TeamHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
	if err != nil {
		notFoundResponse(w, r, h.logger)
		return
	}

	details, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, toTeamDetail(details), nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
