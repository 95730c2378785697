package handler

import (
	"context"

	"github.com/newsrack-dev/newsrack/internal/config"
	"github.com/newsrack-dev/newsrack/internal/service"
)

// Pinger is the dependency probed by the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	media      service.MediaService
	files      service.FileService
	issues     service.IssueService
	newspapers service.NewspaperService
	health     Pinger
	cfg        *config.Config
}

func New(media service.MediaService, files service.FileService, issues service.IssueService, newspapers service.NewspaperService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{media, files, issues, newspapers, health, cfg}
}
