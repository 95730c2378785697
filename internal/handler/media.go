package handler

import (
	"net/http"

	"github.com/newsrack-dev/newsrack/internal/api"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
	"github.com/newsrack-dev/newsrack/internal/utils"
)

// UploadAuth hands out short-lived media store upload credentials.
// Clients fetch a fresh bundle per upload run instead of caching.
func (h *Handler) UploadAuth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.media.UploadAuth())
}

// DeleteMedia removes media store files by id, best-effort per id.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteMediaRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}
	if len(body.FileIds) == 0 {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "fileIds array is required", StatusCode: 400})
		return
	}

	results := h.media.DeleteBatch(r.Context(), body.FileIds)
	utils.WriteJSON(w, http.StatusOK, api.DeleteMediaResponse{Success: true, Results: results})
}
