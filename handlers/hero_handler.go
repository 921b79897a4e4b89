package handlers

import (
	"net/http"

	"github.com/Dosada05/hero-registry/services"
)

type HeroHandler struct {
	heroService services.HeroService
}

func NewHeroHandler(hs services.HeroService) *HeroHandler {
	return &HeroHandler{
		heroService: hs,
	}
}

// CreateHero регистрирует нового героя
// @Summary Create a hero
// @Tags heroes
// @Accept json
// @Produce json
// @Param hero body services.CreateHeroInput true "Hero to create"
// @Success 200 {object} models.Hero
// @Failure 422 {object} handlers.jsonResponse "Missing or invalid field"
// @Router /heroes/ [post]
func (h *HeroHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	var input services.CreateHeroInput
	if err := readJSON(w, r, &input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	hero, err := h.heroService.CreateHero(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, hero, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHeroByID возвращает героя по id
// @Summary Get a hero
// @Tags heroes
// @Produce json
// @Param heroID path int true "Hero ID"
// @Success 200 {object} models.Hero
// @Failure 404 {object} handlers.jsonResponse "Hero not found"
// @Router /heroes/{heroID} [get]
func (h *HeroHandler) GetHeroByID(w http.ResponseWriter, r *http.Request) {
	heroID, err := getIDFromURL(r, "heroID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	hero, err := h.heroService.GetHeroByID(r.Context(), heroID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, hero, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHeroes возвращает всех героев в порядке создания
// @Summary List heroes
// @Tags heroes
// @Produce json
// @Param offset query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Hero
// @Failure 422 {object} handlers.jsonResponse "Invalid offset or limit"
// @Router /heroes/ [get]
func (h *HeroHandler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	var input services.ListHeroesInput

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

	heroes, err := h.heroService.ListHeroes(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, heroes, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateHero меняет только переданные поля героя
// @Summary Update a hero
// @Tags heroes
// @Accept json
// @Produce json
// @Param heroID path int true "Hero ID"
// @Param hero body services.UpdateHeroInput true "Fields to update"
// @Success 200 {object} models.Hero
// @Failure 404 {object} handlers.jsonResponse "Hero not found"
// @Failure 422 {object} handlers.jsonResponse "Invalid field"
// @Router /heroes/{heroID} [patch]
func (h *HeroHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	heroID, err := getIDFromURL(r, "heroID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateHeroInput
	if err := readJSON(w, r, &input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	hero, err := h.heroService.UpdateHero(r.Context(), heroID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, hero, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHero удаляет героя
// @Summary Delete a hero
// @Tags heroes
// @Produce json
// @Param heroID path int true "Hero ID"
// @Success 200 {object} handlers.jsonResponse "Acknowledgement"
// @Failure 404 {object} handlers.jsonResponse "Hero not found"
// @Router /heroes/{heroID} [delete]
func (h *HeroHandler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	heroID, err := getIDFromURL(r, "heroID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.heroService.DeleteHero(r.Context(), heroID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ok": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
