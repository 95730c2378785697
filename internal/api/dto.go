// Package api holds the request/response DTOs of the JSON endpoints.
// Field names and envelope shapes are part of the public contract
// consumed by the archive frontend.
package api

import "github.com/newsrack-dev/newsrack/internal/domain"

type UpsertFileRequest struct {
	Date      string  `json:"date" validate:"required"`
	Newspaper string  `json:"newspaper" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Url       string  `json:"url" validate:"required"`
	Topic     *string `json:"topic"`
	FileId    *string `json:"file_id"`
	Path      *string `json:"path"`
}

type DeleteRecordsRequest struct {
	Id         string   `json:"id"`
	Date       string   `json:"date"`
	Newspaper  string   `json:"newspaper"`
	Types      []string `json:"types"`
	NullIssues []string `json:"nullIssues"`
}

type CreateNewspaperRequest struct {
	Slug        string `json:"slug" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
}

type DeleteNewspaperRequest struct {
	Slug string `json:"slug" validate:"required"`
}

type DeleteMediaRequest struct {
	FileIds []string `json:"fileIds"`
}

type DeleteMediaResponse struct {
	Success bool                       `json:"success"`
	Results []domain.MediaDeleteResult `json:"results"`
}
