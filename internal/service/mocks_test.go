package service

import (
	"context"
	"io"

	"github.com/newsrack-dev/newsrack/internal/domain"
)

// MockMediaStore mocks the MediaStore interface.
type MockMediaStore struct {
	uploadFunc func(ctx context.Context, data io.Reader, fileName, folder, tags string) (domain.UploadResult, error)
	deleteFunc func(ctx context.Context, fileId string) error
	authFunc   func() domain.UploadAuth
}

func (m *MockMediaStore) Upload(ctx context.Context, data io.Reader, fileName, folder, tags string) (domain.UploadResult, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, data, fileName, folder, tags)
	}
	return domain.UploadResult{}, nil
}

func (m *MockMediaStore) Delete(ctx context.Context, fileId string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, fileId)
	}
	return nil
}

func (m *MockMediaStore) AuthParams() domain.UploadAuth {
	if m.authFunc != nil {
		return m.authFunc()
	}
	return domain.UploadAuth{}
}

// MockFileStorage mocks the FileStorage interface.
type MockFileStorage struct {
	upsertFunc     func(ctx context.Context, f domain.File) (domain.File, error)
	listFunc       func(ctx context.Context, date, newspaper string) ([]domain.File, error)
	deleteByIdFunc func(ctx context.Context, id string) (int64, error)
	deleteFunc     func(ctx context.Context, date, newspaper string, types []domain.FileType) (int64, error)
}

func (m *MockFileStorage) UpsertFile(ctx context.Context, f domain.File) (domain.File, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, f)
	}
	return f, nil
}

func (m *MockFileStorage) ListFiles(ctx context.Context, date, newspaper string) ([]domain.File, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, date, newspaper)
	}
	return nil, nil
}

func (m *MockFileStorage) DeleteFileById(ctx context.Context, id string) (int64, error) {
	if m.deleteByIdFunc != nil {
		return m.deleteByIdFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockFileStorage) DeleteFiles(ctx context.Context, date, newspaper string, types []domain.FileType) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, date, newspaper, types)
	}
	return 0, nil
}

// MockIssueStorage mocks the IssueStorage interface.
type MockIssueStorage struct {
	upsertUrlFunc  func(ctx context.Context, date, newspaper string, field domain.IssueField, url string) (domain.Issue, error)
	nullFieldsFunc func(ctx context.Context, date, newspaper string, fields []domain.IssueField) (int64, error)
	listFunc       func(ctx context.Context, date string) ([]domain.Issue, error)
	topicsFunc     func(ctx context.Context, date string) ([]string, error)
	topicPdfsFunc  func(ctx context.Context, date, topic string) ([]domain.TopicPdf, error)
}

func (m *MockIssueStorage) UpsertIssueUrl(ctx context.Context, date, newspaper string, field domain.IssueField, url string) (domain.Issue, error) {
	if m.upsertUrlFunc != nil {
		return m.upsertUrlFunc(ctx, date, newspaper, field, url)
	}
	return domain.Issue{Date: date, Newspaper: newspaper}, nil
}

func (m *MockIssueStorage) NullIssueFields(ctx context.Context, date, newspaper string, fields []domain.IssueField) (int64, error) {
	if m.nullFieldsFunc != nil {
		return m.nullFieldsFunc(ctx, date, newspaper, fields)
	}
	return 0, nil
}

func (m *MockIssueStorage) ListIssues(ctx context.Context, date string) ([]domain.Issue, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockIssueStorage) ListTopics(ctx context.Context, date string) ([]string, error) {
	if m.topicsFunc != nil {
		return m.topicsFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockIssueStorage) ListTopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error) {
	if m.topicPdfsFunc != nil {
		return m.topicPdfsFunc(ctx, date, topic)
	}
	return nil, nil
}
