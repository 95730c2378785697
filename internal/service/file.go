package service

import (
	"context"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

// FileStorage is the files-table half of the metadata store.
type FileStorage interface {
	UpsertFile(ctx context.Context, f domain.File) (domain.File, error)
	ListFiles(ctx context.Context, date, newspaper string) ([]domain.File, error)
	DeleteFileById(ctx context.Context, id string) (int64, error)
	DeleteFiles(ctx context.Context, date, newspaper string, types []domain.FileType) (int64, error)
}

// IssueStorage is the issues-table half of the metadata store.
type IssueStorage interface {
	UpsertIssueUrl(ctx context.Context, date, newspaper string, field domain.IssueField, url string) (domain.Issue, error)
	NullIssueFields(ctx context.Context, date, newspaper string, fields []domain.IssueField) (int64, error)
	ListIssues(ctx context.Context, date string) ([]domain.Issue, error)
	ListTopics(ctx context.Context, date string) ([]string, error)
	ListTopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error)
}

// UpsertOutcome reports what a single metadata upsert touched: always
// the file row, plus the issue row when the type feeds a denormalized
// issue URL.
type UpsertOutcome struct {
	File  domain.File   `json:"file"`
	Issue *domain.Issue `json:"issue,omitempty"`
}

// RecordDelete selects metadata rows to remove: either one file row by
// id, or the (date, newspaper) rows of the given types plus the issue
// URL fields to null.
type RecordDelete struct {
	Id         string
	Date       string
	Newspaper  string
	Types      []domain.FileType
	NullFields []domain.IssueField
}

type RecordDeleteOutcome struct {
	FilesDeleted  int64 `json:"files_deleted"`
	IssuesUpdated int64 `json:"issues_updated"`
}

// to mock service in tests
type FileService interface {
	List(ctx context.Context, date, newspaper string) ([]domain.File, error)
	Upsert(ctx context.Context, f domain.File) (UpsertOutcome, error)
	Delete(ctx context.Context, req RecordDelete) (RecordDeleteOutcome, error)
}

type File struct {
	files  FileStorage
	issues IssueStorage
}

func NewFile(files FileStorage, issues IssueStorage) FileService {
	return &File{files, issues}
}

func (s *File) List(ctx context.Context, date, newspaper string) ([]domain.File, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.files.ListFiles(ctx, date, newspaper)
}

// Upsert writes the file row and, for original and summary types, the
// matching denormalized issue URL. The media reference check runs
// before any write so a half-described artifact never reaches the
// database.
func (s *File) Upsert(ctx context.Context, f domain.File) (UpsertOutcome, error) {
	if err := validateDate(f.Date); err != nil {
		return UpsertOutcome{}, err
	}
	if !f.Type.Valid() {
		return UpsertOutcome{}, &apperrors.ErrorWithStatusCode{Message: "Unknown file type: " + string(f.Type), StatusCode: 400}
	}
	if f.Type.RequiresMediaRef() {
		if f.FileId == nil || *f.FileId == "" {
			return UpsertOutcome{}, &apperrors.ErrorWithStatusCode{Message: "Missing file_id from media store upload response", StatusCode: 400}
		}
		if f.Path == nil || *f.Path == "" {
			return UpsertOutcome{}, &apperrors.ErrorWithStatusCode{Message: "Missing path from media store upload response", StatusCode: 400}
		}
	}

	stored, err := s.files.UpsertFile(ctx, f)
	if err != nil {
		return UpsertOutcome{}, err
	}
	outcome := UpsertOutcome{File: stored}

	var field domain.IssueField
	switch f.Type {
	case domain.FileTypeOriginal:
		field = domain.IssueFieldOriginalUrl
	case domain.FileTypeSummary:
		field = domain.IssueFieldSummaryUrl
	default:
		return outcome, nil
	}
	issue, err := s.issues.UpsertIssueUrl(ctx, f.Date, f.Newspaper, field, f.Url)
	if err != nil {
		return UpsertOutcome{}, err
	}
	outcome.Issue = &issue
	return outcome, nil
}

func (s *File) Delete(ctx context.Context, req RecordDelete) (RecordDeleteOutcome, error) {
	if req.Id != "" {
		deleted, err := s.files.DeleteFileById(ctx, req.Id)
		if err != nil {
			return RecordDeleteOutcome{}, err
		}
		return RecordDeleteOutcome{FilesDeleted: deleted}, nil
	}

	if err := validateDate(req.Date); err != nil {
		return RecordDeleteOutcome{}, err
	}
	if req.Newspaper == "" {
		return RecordDeleteOutcome{}, &apperrors.ErrorWithStatusCode{Message: "Missing required fields: date, newspaper", StatusCode: 400}
	}

	var outcome RecordDeleteOutcome
	if len(req.Types) > 0 {
		deleted, err := s.files.DeleteFiles(ctx, req.Date, req.Newspaper, req.Types)
		if err != nil {
			return RecordDeleteOutcome{}, err
		}
		outcome.FilesDeleted = deleted
	}
	if len(req.NullFields) > 0 {
		updated, err := s.issues.NullIssueFields(ctx, req.Date, req.Newspaper, req.NullFields)
		if err != nil {
			return RecordDeleteOutcome{}, err
		}
		outcome.IssuesUpdated = updated
	}
	return outcome, nil
}
