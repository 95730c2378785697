package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
	"github.com/newsrack-dev/newsrack/internal/utils"
)

// UploadBundle receives one original PDF plus a folder of summary and
// topic PDFs as multipart form data and runs the upload-and-link
// workflow for the (date, newspaper) issue.
func (h *Handler) UploadBundle(w http.ResponseWriter, r *http.Request) {
	maxSize := h.cfg.Public.MaxBundleSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Failed to parse multipart form", StatusCode: 400})
		return
	}

	date := r.FormValue("date")
	newspaper := r.FormValue("newspaper")

	original, closeOriginal, err := openSingle(r.MultipartForm, "original")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	defer closeOriginal()

	bundle, closeBundle, err := openAll(r.MultipartForm, "bundle")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	defer closeBundle()

	stored, err := h.issues.UploadBundle(r.Context(), date, newspaper, original, bundle)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, stored)
}

func openSingle(form *multipart.Form, field string) (domain.PendingFile, func(), error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return domain.PendingFile{}, nil, &apperrors.ErrorWithStatusCode{Message: "Missing file field: " + field, StatusCode: 400}
	}
	f, err := headers[0].Open()
	if err != nil {
		return domain.PendingFile{}, nil, err
	}
	return domain.PendingFile{Name: headers[0].Filename, Data: f}, func() { f.Close() }, nil
}

func openAll(form *multipart.Form, field string) ([]domain.PendingFile, func(), error) {
	headers := form.File[field]
	files := make([]domain.PendingFile, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	cleanup := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, f)
		files = append(files, domain.PendingFile{Name: fh.Filename, Data: f})
	}
	return files, cleanup, nil
}

// DeleteIssue removes one issue end to end: remote media (best-effort),
// file rows and the denormalized issue URLs.
func (h *Handler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	newspaper := r.URL.Query().Get("newspaper")
	if date == "" || newspaper == "" {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required parameters: date, newspaper", StatusCode: 400})
		return
	}

	report, err := h.issues.Delete(r.Context(), date, newspaper)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, report)
}

// GetIssues lists the issues of one date for the front page.
func (h *Handler) GetIssues(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required parameter: date", StatusCode: 400})
		return
	}

	issues, err := h.issues.ListByDate(r.Context(), date)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, issues)
}

// GetTopics lists the distinct topic tags of one date.
func (h *Handler) GetTopics(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required parameter: date", StatusCode: 400})
		return
	}

	topics, err := h.issues.Topics(r.Context(), date)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, topics)
}

// GetTopicPdfs lists the per-newspaper PDFs of one topic on one date.
func (h *Handler) GetTopicPdfs(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	topic := chi.URLParam(r, "topic")
	if date == "" {
		utils.WriteError(w, &apperrors.ErrorWithStatusCode{Message: "Missing required parameter: date", StatusCode: 400})
		return
	}

	pdfs, err := h.issues.TopicPdfs(r.Context(), date, topic)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteData(w, http.StatusOK, pdfs)
}
