package handler_test

import (
	"context"

	"github.com/newsrack-dev/newsrack/internal/domain"
	"github.com/newsrack-dev/newsrack/internal/service"
)

// MockMediaService mocks service.MediaService.
type MockMediaService struct {
	MockUploadAuth  func() domain.UploadAuth
	MockDeleteBatch func(ctx context.Context, fileIds []string) []domain.MediaDeleteResult
}

func (m *MockMediaService) UploadAuth() domain.UploadAuth {
	if m.MockUploadAuth != nil {
		return m.MockUploadAuth()
	}
	return domain.UploadAuth{}
}

func (m *MockMediaService) DeleteBatch(ctx context.Context, fileIds []string) []domain.MediaDeleteResult {
	if m.MockDeleteBatch != nil {
		return m.MockDeleteBatch(ctx, fileIds)
	}
	return nil
}

// MockFileService mocks service.FileService.
type MockFileService struct {
	MockList   func(ctx context.Context, date, newspaper string) ([]domain.File, error)
	MockUpsert func(ctx context.Context, f domain.File) (service.UpsertOutcome, error)
	MockDelete func(ctx context.Context, req service.RecordDelete) (service.RecordDeleteOutcome, error)
}

func (m *MockFileService) List(ctx context.Context, date, newspaper string) ([]domain.File, error) {
	if m.MockList != nil {
		return m.MockList(ctx, date, newspaper)
	}
	return nil, nil
}

func (m *MockFileService) Upsert(ctx context.Context, f domain.File) (service.UpsertOutcome, error) {
	if m.MockUpsert != nil {
		return m.MockUpsert(ctx, f)
	}
	return service.UpsertOutcome{File: f}, nil
}

func (m *MockFileService) Delete(ctx context.Context, req service.RecordDelete) (service.RecordDeleteOutcome, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, req)
	}
	return service.RecordDeleteOutcome{}, nil
}

// MockIssueService mocks service.IssueService.
type MockIssueService struct {
	MockUploadBundle func(ctx context.Context, date, newspaper string, original domain.PendingFile, bundle []domain.PendingFile) ([]domain.File, error)
	MockDelete       func(ctx context.Context, date, newspaper string) (domain.IssueDeleteReport, error)
	MockListByDate   func(ctx context.Context, date string) ([]domain.Issue, error)
	MockTopics       func(ctx context.Context, date string) ([]string, error)
	MockTopicPdfs    func(ctx context.Context, date, topic string) ([]domain.TopicPdf, error)
}

func (m *MockIssueService) UploadBundle(ctx context.Context, date, newspaper string, original domain.PendingFile, bundle []domain.PendingFile) ([]domain.File, error) {
	if m.MockUploadBundle != nil {
		return m.MockUploadBundle(ctx, date, newspaper, original, bundle)
	}
	return nil, nil
}

func (m *MockIssueService) Delete(ctx context.Context, date, newspaper string) (domain.IssueDeleteReport, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, date, newspaper)
	}
	return domain.IssueDeleteReport{}, nil
}

func (m *MockIssueService) ListByDate(ctx context.Context, date string) ([]domain.Issue, error) {
	if m.MockListByDate != nil {
		return m.MockListByDate(ctx, date)
	}
	return nil, nil
}

func (m *MockIssueService) Topics(ctx context.Context, date string) ([]string, error) {
	if m.MockTopics != nil {
		return m.MockTopics(ctx, date)
	}
	return nil, nil
}

func (m *MockIssueService) TopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error) {
	if m.MockTopicPdfs != nil {
		return m.MockTopicPdfs(ctx, date, topic)
	}
	return nil, nil
}

// MockNewspaperService mocks service.NewspaperService.
type MockNewspaperService struct {
	MockList   func(ctx context.Context) ([]domain.Newspaper, error)
	MockCreate func(ctx context.Context, slug, displayName string) (domain.Newspaper, error)
	MockDelete func(ctx context.Context, slug string) error
}

func (m *MockNewspaperService) List(ctx context.Context) ([]domain.Newspaper, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return nil, nil
}

func (m *MockNewspaperService) Create(ctx context.Context, slug, displayName string) (domain.Newspaper, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, slug, displayName)
	}
	return domain.Newspaper{Slug: slug, DisplayName: displayName}, nil
}

func (m *MockNewspaperService) Delete(ctx context.Context, slug string) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, slug)
	}
	return nil
}
