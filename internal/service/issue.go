package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
	"github.com/newsrack-dev/newsrack/internal/logger"
)

// to mock service in tests
type IssueService interface {
	UploadBundle(ctx context.Context, date, newspaper string, original domain.PendingFile, bundle []domain.PendingFile) ([]domain.File, error)
	Delete(ctx context.Context, date, newspaper string) (domain.IssueDeleteReport, error)
	ListByDate(ctx context.Context, date string) ([]domain.Issue, error)
	Topics(ctx context.Context, date string) ([]string, error)
	TopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error)
}

type Issue struct {
	media  MediaStore
	files  FileStorage
	issues IssueStorage
}

func NewIssue(media MediaStore, files FileStorage, issues IssueStorage) IssueService {
	return &Issue{media, files, issues}
}

type bundleItem struct {
	file  domain.PendingFile
	ftype domain.FileType
	topic string
}

// UploadBundle runs the upload-and-link workflow for one issue: every
// binary goes to the media store first, then the metadata rows are
// upserted in dependency order (file row before the issue URL derived
// from it). Steps are strictly sequential and the first error aborts
// the rest. There is no compensating rollback: a mid-sequence failure
// leaves already-uploaded media and already-written rows in place, and
// the issue deletion flow is the cleanup path for that partial state.
func (s *Issue) UploadBundle(ctx context.Context, date, newspaper string, original domain.PendingFile, bundle []domain.PendingFile) ([]domain.File, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if newspaper == "" {
		return nil, &apperrors.ErrorWithStatusCode{Message: "Missing required field: newspaper", StatusCode: 400}
	}
	if original.Data == nil {
		return nil, &apperrors.ErrorWithStatusCode{Message: "Missing original PDF", StatusCode: 400}
	}
	if len(bundle) == 0 {
		return nil, &apperrors.ErrorWithStatusCode{Message: "Missing bundle files", StatusCode: 400}
	}

	items := make([]bundleItem, 0, len(bundle))
	hasSummary := false
	for _, f := range bundle {
		ftype, topic := ClassifyBundleFile(f.Name)
		if ftype == domain.FileTypeSummary {
			hasSummary = true
		}
		items = append(items, bundleItem{file: f, ftype: ftype, topic: topic})
	}
	if !hasSummary {
		return nil, &apperrors.ErrorWithStatusCode{Message: "Bundle must contain a summary PDF", StatusCode: 400}
	}

	base := mediaFolder(date, newspaper)
	tags := fmt.Sprintf("date:%s,paper:%s", date, newspaper)

	originalUpload, err := s.media.Upload(ctx, original.Data, original.Name, base+"/original", tags)
	if err != nil {
		return nil, err
	}

	uploads := make([]domain.UploadResult, 0, len(items))
	for _, item := range items {
		result, err := s.media.Upload(ctx, item.file.Data, item.file.Name, base+"/"+string(item.ftype), tags)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, result)
	}

	stored := make([]domain.File, 0, len(items)+1)

	row, err := s.upsertRow(ctx, date, newspaper, domain.FileTypeOriginal, "", originalUpload)
	if err != nil {
		return nil, err
	}
	stored = append(stored, row)
	if _, err := s.issues.UpsertIssueUrl(ctx, date, newspaper, domain.IssueFieldOriginalUrl, originalUpload.Url); err != nil {
		return nil, err
	}

	for i, item := range items {
		row, err := s.upsertRow(ctx, date, newspaper, item.ftype, item.topic, uploads[i])
		if err != nil {
			return nil, err
		}
		stored = append(stored, row)
		if item.ftype == domain.FileTypeSummary {
			if _, err := s.issues.UpsertIssueUrl(ctx, date, newspaper, domain.IssueFieldSummaryUrl, uploads[i].Url); err != nil {
				return nil, err
			}
		}
	}

	return stored, nil
}

func (s *Issue) upsertRow(ctx context.Context, date, newspaper string, ftype domain.FileType, topic string, upload domain.UploadResult) (domain.File, error) {
	f := domain.File{
		Date:      date,
		Newspaper: newspaper,
		Type:      ftype,
		Url:       upload.Url,
		FileId:    &upload.FileId,
		Path:      &upload.Path,
	}
	if topic != "" {
		f.Topic = &topic
	}
	return s.files.UpsertFile(ctx, f)
}

// Delete tears down one issue: list its file rows, best-effort delete
// of the remote binaries, then remove the rows and null the issue URL
// fields. Remote deletion comes first so the metadata, which records
// what should exist remotely, is not lost before the attempt; failed
// remote deletions leave orphaned media, which is accepted.
func (s *Issue) Delete(ctx context.Context, date, newspaper string) (domain.IssueDeleteReport, error) {
	if err := validateDate(date); err != nil {
		return domain.IssueDeleteReport{}, err
	}
	if newspaper == "" {
		return domain.IssueDeleteReport{}, &apperrors.ErrorWithStatusCode{Message: "Missing required field: newspaper", StatusCode: 400}
	}

	files, err := s.files.ListFiles(ctx, date, newspaper)
	if err != nil {
		return domain.IssueDeleteReport{}, err
	}

	var report domain.IssueDeleteReport
	for _, f := range files {
		if f.FileId == nil || *f.FileId == "" {
			continue
		}
		result := domain.MediaDeleteResult{FileId: *f.FileId, Success: true}
		if err := s.media.Delete(ctx, *f.FileId); err != nil {
			logger.Log.Warn("media delete failed, leaving orphan", "file_id", *f.FileId, "error", err)
			result.Success = false
			result.Error = err.Error()
		}
		report.Media = append(report.Media, result)
	}

	deleted, err := s.files.DeleteFiles(ctx, date, newspaper,
		[]domain.FileType{domain.FileTypeOriginal, domain.FileTypeSummary, domain.FileTypeTopic})
	if err != nil {
		return report, err
	}
	report.RowsDeleted = deleted

	if _, err := s.issues.NullIssueFields(ctx, date, newspaper,
		[]domain.IssueField{domain.IssueFieldOriginalUrl, domain.IssueFieldSummaryUrl}); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Issue) ListByDate(ctx context.Context, date string) ([]domain.Issue, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.issues.ListIssues(ctx, date)
}

func (s *Issue) Topics(ctx context.Context, date string) ([]string, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.issues.ListTopics(ctx, date)
}

func (s *Issue) TopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, &apperrors.ErrorWithStatusCode{Message: "Missing required field: topic", StatusCode: 400}
	}
	return s.issues.ListTopicPdfs(ctx, date, topic)
}

// mediaFolder builds the media store folder for one issue, segmented
// by year/month/day/newspaper.
func mediaFolder(date, newspaper string) string {
	parts := strings.SplitN(date, "-", 3)
	return fmt.Sprintf("/news/%s/%s/%s/%s", parts[0], parts[1], parts[2], newspaper)
}
