package pg

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) ListNewspapers(ctx context.Context) ([]domain.Newspaper, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, display_name, created_at
		FROM newspapers
		ORDER BY display_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	newspapers := []domain.Newspaper{}
	for rows.Next() {
		var n domain.Newspaper
		if err := rows.Scan(&n.Slug, &n.DisplayName, &n.CreatedAt); err != nil {
			return nil, err
		}
		newspapers = append(newspapers, n)
	}
	return newspapers, rows.Err()
}

func (s *Storage) CreateNewspaper(ctx context.Context, slug, displayName string) (domain.Newspaper, error) {
	var n domain.Newspaper
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO newspapers (slug, display_name)
		VALUES ($1, $2)
		RETURNING slug, display_name, created_at`,
		slug, displayName).Scan(&n.Slug, &n.DisplayName, &n.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.Newspaper{}, &apperrors.ErrorWithStatusCode{Message: "Newspaper with this slug already exists", StatusCode: 409}
		}
		return domain.Newspaper{}, err
	}
	return n, nil
}

// DeleteNewspaper removes the newspaper only if no file row references
// its slug. The referential guard and the delete run as one statement
// so there is no window between check and delete.
func (s *Storage) DeleteNewspaper(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM newspapers
		WHERE slug = $1
		AND NOT EXISTS (SELECT 1 FROM files WHERE files.newspaper = newspapers.slug)`,
		slug)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted > 0 {
		return nil
	}

	// Nothing deleted: either the slug is unknown or files reference it.
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM newspapers WHERE slug = $1)", slug).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return &apperrors.ErrorWithStatusCode{Message: "Cannot delete newspaper: it has associated files", StatusCode: 409}
	}
	return &apperrors.ErrorWithStatusCode{Message: "Newspaper not found", StatusCode: 404}
}
