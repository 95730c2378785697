package domain

import (
	"io"
	"time"
)

type FileType string

const (
	FileTypeOriginal FileType = "original"
	FileTypeArchive  FileType = "archive"
	FileTypeSummary  FileType = "summary"
	FileTypeTopic    FileType = "topic"
)

func (t FileType) Valid() bool {
	switch t {
	case FileTypeOriginal, FileTypeArchive, FileTypeSummary, FileTypeTopic:
		return true
	}
	return false
}

// RequiresMediaRef reports whether rows of this type must carry the
// media store identifier and path alongside the public URL.
func (t FileType) RequiresMediaRef() bool {
	return t == FileTypeOriginal || t == FileTypeArchive
}

// File is a single stored artifact (original PDF, archive, summary PDF
// or per-topic PDF) with its metadata row. Rows are keyed uniquely by
// (date, newspaper, type, topic); topic is nil except for type "topic".
type File struct {
	Id        string    `json:"id"`
	Date      string    `json:"date"`
	Newspaper string    `json:"newspaper"`
	Type      FileType  `json:"type"`
	Topic     *string   `json:"topic"`
	Url       string    `json:"url"`
	FileId    *string   `json:"file_id"`
	Path      *string   `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingFile is an uploaded file that has been received but not yet
// pushed to the media store.
type PendingFile struct {
	Name string
	Data io.Reader
}

// UploadResult is what the media store hands back for a stored binary.
type UploadResult struct {
	Url    string
	FileId string
	Path   string
}

// UploadAuth is a short-lived credential bundle for client-side uploads.
type UploadAuth struct {
	Token       string `json:"token"`
	Expire      int64  `json:"expire"`
	Signature   string `json:"signature"`
	PublicKey   string `json:"publicKey"`
	UrlEndpoint string `json:"urlEndpoint"`
}

// MediaDeleteResult is the per-identifier outcome of a best-effort
// media store deletion batch.
type MediaDeleteResult struct {
	FileId  string `json:"fileId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
