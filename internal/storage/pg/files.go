package pg

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/newsrack-dev/newsrack/internal/domain"
)

const fileColumns = "id, date, newspaper, type, topic, url, file_id, path, created_at"

func scanFile(row interface{ Scan(...any) error }) (domain.File, error) {
	var f domain.File
	var date time.Time
	err := row.Scan(&f.Id, &date, &f.Newspaper, &f.Type, &f.Topic, &f.Url, &f.FileId, &f.Path, &f.CreatedAt)
	if err != nil {
		return domain.File{}, err
	}
	f.Date = date.Format(time.DateOnly)
	return f, nil
}

// UpsertFile inserts or overwrites the row matching the file's
// (date, newspaper, type, topic) key and returns the stored row.
func (s *Storage) UpsertFile(ctx context.Context, f domain.File) (domain.File, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO files (date, newspaper, type, topic, url, file_id, path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, newspaper, type, topic)
		DO UPDATE SET url = EXCLUDED.url, file_id = EXCLUDED.file_id, path = EXCLUDED.path
		RETURNING `+fileColumns,
		f.Date, f.Newspaper, string(f.Type), f.Topic, f.Url, f.FileId, f.Path)
	return scanFile(row)
}

// ListFiles returns every file row for the issue key, sorted by type.
func (s *Storage) ListFiles(ctx context.Context, date, newspaper string) ([]domain.File, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+fileColumns+`
		FROM files
		WHERE date = $1 AND newspaper = $2
		ORDER BY type`,
		date, newspaper)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []domain.File{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *Storage) DeleteFileById(ctx context.Context, id string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Storage) DeleteFiles(ctx context.Context, date, newspaper string, types []domain.FileType) (int64, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM files
		WHERE date = $1 AND newspaper = $2 AND type = ANY($3)`,
		date, newspaper, pq.Array(typeNames))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
