package handlers

import (
	"net/http"

	"github.com/Dosada05/hero-registry/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: ts,
	}
}

// CreateTeam регистрирует новую команду
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body services.CreateTeamInput true "Team to create"
// @Success 200 {object} models.Team
// @Failure 422 {object} handlers.jsonResponse "Missing or invalid field"
// @Router /teams/ [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTeamByID возвращает команду по id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} handlers.jsonResponse "Team not found"
// @Router /teams/{teamID} [get]
func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTeams возвращает все команды в порядке создания
// @Summary List teams
// @Tags teams
// @Produce json
// @Param offset query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Team
// @Failure 422 {object} handlers.jsonResponse "Invalid offset or limit"
// @Router /teams/ [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	var input services.ListTeamsInput

	offset, err := queryIntParam(r, "offset")
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	input.Offset = offset

	limit, err := queryIntParam(r, "limit")
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	input.Limit = limit

	teams, err := h.teamService.ListTeams(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTeamHeroes возвращает героев команды
// @Summary List heroes of a team
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} models.Hero
// @Failure 404 {object} handlers.jsonResponse "Team not found"
// @Router /teams/{teamID}/heroes [get]
func (h *TeamHandler) ListTeamHeroes(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	heroes, err := h.teamService.ListTeamHeroes(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, heroes, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateTeam меняет только переданные поля команды
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param teamID path int true "Team ID"
// @Param team body services.UpdateTeamInput true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 404 {object} handlers.jsonResponse "Team not found"
// @Failure 422 {object} handlers.jsonResponse "Invalid field"
// @Router /teams/{teamID} [patch]
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteTeam удаляет команду, её герои остаются без team_id
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} handlers.jsonResponse "Acknowledgement"
// @Failure 404 {object} handlers.jsonResponse "Team not found"
// @Router /teams/{teamID} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ok": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
