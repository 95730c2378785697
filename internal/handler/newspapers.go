package handler

import (
	"net/http"

	"github.com/newsrack-dev/newsrack/internal/api"
	"github.com/newsrack-dev/newsrack/internal/utils"
)

func (h *Handler) ListNewspapers(w http.ResponseWriter, r *http.Request) {
	newspapers, err := h.newspapers.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, newspapers)
}

func (h *Handler) CreateNewspaper(w http.ResponseWriter, r *http.Request) {
	var body api.CreateNewspaperRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	created, err := h.newspapers.Create(r.Context(), body.Slug, body.DisplayName)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusCreated, created)
}

func (h *Handler) DeleteNewspaper(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteNewspaperRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.newspapers.Delete(r.Context(), body.Slug); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, nil)
}
