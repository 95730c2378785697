package handler

import (
	"net/http"
	"net/url"

	"github.com/newsrack-dev/newsrack/internal/api"
	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
	"github.com/newsrack-dev/newsrack/internal/service"
	"github.com/newsrack-dev/newsrack/internal/utils"
)

// ListFiles returns every file row of one (date, newspaper) key.
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	newspaper := r.URL.Query().Get("newspaper")
	if date == "" || newspaper == "" {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required parameters: date, newspaper", StatusCode: 400})
		return
	}

	files, err := h.files.List(r.Context(), date, newspaper)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, files)
}

// UpsertFile writes one file metadata row and the issue URL it feeds.
func (h *Handler) UpsertFile(w http.ResponseWriter, r *http.Request) {
	var body api.UpsertFileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	f := domain.File{
		Date:      body.Date,
		Newspaper: body.Newspaper,
		Type:      domain.FileType(body.Type),
		Topic:     body.Topic,
		Url:       body.Url,
		FileId:    body.FileId,
		Path:      derivePath(body.Path, body.Url),
	}

	outcome, err := h.files.Upsert(r.Context(), f)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, outcome)
}

// derivePath falls back to the URL's path component when the upload
// response path was not forwarded by the client.
func derivePath(path *string, rawUrl string) *string {
	if path != nil && *path != "" {
		return path
	}
	parsed, err := url.Parse(rawUrl)
	if err != nil || parsed.Path == "" {
		return path
	}
	return &parsed.Path
}

// DeleteRecords removes file rows (by id, or by issue key and type set)
// and nulls the requested issue URL fields in one request.
func (h *Handler) DeleteRecords(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteRecordsRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}
	if body.Id == "" && (body.Date == "" || body.Newspaper == "") {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required fields: date, newspaper", StatusCode: 400})
		return
	}

	req := service.RecordDelete{Id: body.Id, Date: body.Date, Newspaper: body.Newspaper}
	for _, t := range body.Types {
		ftype := domain.FileType(t)
		if !ftype.Valid() {
			utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Unknown file type: " + t, StatusCode: 400})
			return
		}
		req.Types = append(req.Types, ftype)
	}
	for _, f := range body.NullIssues {
		field := domain.IssueField(f)
		if !field.Valid() {
			utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Unknown issue field: " + f, StatusCode: 400})
			return
		}
		req.NullFields = append(req.NullFields, field)
	}

	outcome, err := h.files.Delete(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, outcome)
}
