package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-results/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	logger            *slog.Logger
}

func NewTournamentHandler(ts services.TournamentService, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		logger:            logger,
	}
}

// ListHandler godoc
// @Summary Список турниров
// @Tags tournaments
// @Description Все турниры, сначала самые новые по дате.
// @Produce json
// @Success 200 {array} handlers.tournamentListItem
// @Failure 500 {object} map[string]string "Внутренняя ошибка"
// @Router /api/tournaments/ [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, toTournamentList(tournaments), nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByIDHandler godoc
// @Summary Турнир с матчами
// @Tags tournaments
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} handlers.tournamentDetail
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /api/tournaments/{tournamentID}/ [get]
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		// Нечисловой id не соответствует ни одному ресурсу
		notFoundResponse(w, r, h.logger)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, toTournamentDetail(tournament), nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
