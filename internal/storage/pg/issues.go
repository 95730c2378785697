package pg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

func scanIssue(row interface{ Scan(...any) error }) (domain.Issue, error) {
	var issue domain.Issue
	var date time.Time
	err := row.Scan(&date, &issue.Newspaper, &issue.OriginalUrl, &issue.SummaryUrl)
	if err != nil {
		return domain.Issue{}, err
	}
	issue.Date = date.Format(time.DateOnly)
	return issue, nil
}

// UpsertIssueUrl sets exactly one of the issue's URL columns, creating
// the row for the (date, newspaper) key if needed. The other column is
// left untouched.
func (s *Storage) UpsertIssueUrl(ctx context.Context, date, newspaper string, field domain.IssueField, url string) (domain.Issue, error) {
	if !field.Valid() {
		return domain.Issue{}, &apperrors.ErrorWithStatusCode{Message: "unknown issue field", StatusCode: 400}
	}
	// field is restricted to the two known column names above, so
	// interpolating it is safe.
	query := fmt.Sprintf(`
		INSERT INTO issues (date, newspaper, %[1]s)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, newspaper)
		DO UPDATE SET %[1]s = EXCLUDED.%[1]s
		RETURNING date, newspaper, original_url, summary_url`, string(field))
	return scanIssue(s.db.QueryRowContext(ctx, query, date, newspaper, url))
}

// NullIssueFields sets the named URL columns to NULL, leaving any
// column not in fields unchanged. Returns the number of updated rows.
func (s *Storage) NullIssueFields(ctx context.Context, date, newspaper string, fields []domain.IssueField) (int64, error) {
	assignments := make([]string, 0, len(fields))
	for _, f := range fields {
		if !f.Valid() {
			return 0, &apperrors.ErrorWithStatusCode{Message: "unknown issue field", StatusCode: 400}
		}
		assignments = append(assignments, string(f)+" = NULL")
	}
	if len(assignments) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(
		"UPDATE issues SET %s WHERE date = $1 AND newspaper = $2",
		strings.Join(assignments, ", "))
	result, err := s.db.ExecContext(ctx, query, date, newspaper)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListIssues returns the issues of one date, sorted by newspaper.
func (s *Storage) ListIssues(ctx context.Context, date string) ([]domain.Issue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, newspaper, original_url, summary_url
		FROM issues
		WHERE date = $1
		ORDER BY newspaper`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := []domain.Issue{}
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

// ListTopics returns the distinct topic tags present on one date.
func (s *Storage) ListTopics(ctx context.Context, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT topic
		FROM files
		WHERE date = $1 AND type = 'topic' AND topic IS NOT NULL
		ORDER BY topic`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []string{}
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// ListTopicPdfs returns the per-newspaper PDFs of one topic on one date.
func (s *Storage) ListTopicPdfs(ctx context.Context, date, topic string) ([]domain.TopicPdf, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT newspaper, url
		FROM files
		WHERE date = $1 AND type = 'topic' AND topic = $2
		ORDER BY newspaper`, date, topic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pdfs := []domain.TopicPdf{}
	for rows.Next() {
		var pdf domain.TopicPdf
		if err := rows.Scan(&pdf.Newspaper, &pdf.Url); err != nil {
			return nil, err
		}
		pdfs = append(pdfs, pdf)
	}
	return pdfs, rows.Err()
}
