package service

import (
	"context"
	"io"

	"github.com/newsrack-dev/newsrack/internal/domain"
	"github.com/newsrack-dev/newsrack/internal/logger"
)

// MediaStore is the external object storage / CDN for binary files.
type MediaStore interface {
	Upload(ctx context.Context, data io.Reader, fileName, folder, tags string) (domain.UploadResult, error)
	Delete(ctx context.Context, fileId string) error
	AuthParams() domain.UploadAuth
}

// to mock service in tests
type MediaService interface {
	UploadAuth() domain.UploadAuth
	DeleteBatch(ctx context.Context, fileIds []string) []domain.MediaDeleteResult
}

type Media struct {
	store MediaStore
}

func NewMedia(store MediaStore) MediaService {
	return &Media{store}
}

func (m *Media) UploadAuth() domain.UploadAuth {
	return m.store.AuthParams()
}

// DeleteBatch removes stored files one identifier at a time. Each
// failure is captured in its result instead of aborting the batch.
func (m *Media) DeleteBatch(ctx context.Context, fileIds []string) []domain.MediaDeleteResult {
	results := make([]domain.MediaDeleteResult, 0, len(fileIds))
	for _, id := range fileIds {
		if err := m.store.Delete(ctx, id); err != nil {
			logger.Log.Warn("media delete failed", "file_id", id, "error", err)
			results = append(results, domain.MediaDeleteResult{FileId: id, Success: false, Error: err.Error()})
			continue
		}
		results = append(results, domain.MediaDeleteResult{FileId: id, Success: true})
	}
	return results
}
