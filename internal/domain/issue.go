package domain

import "time"

// IssueField names one of the denormalized URL columns on the issues table.
type IssueField string

const (
	IssueFieldOriginalUrl IssueField = "original_url"
	IssueFieldSummaryUrl  IssueField = "summary_url"
)

func (f IssueField) Valid() bool {
	return f == IssueFieldOriginalUrl || f == IssueFieldSummaryUrl
}

// Issue is the conceptual daily bundle of URLs for one newspaper on one
// date. The URL fields mirror the latest corresponding File row; they
// are denormalized copies, not foreign keys, so a failed mid-sequence
// write can leave them stale until the deletion flow cleans up.
type Issue struct {
	Date        string  `json:"date"`
	Newspaper   string  `json:"newspaper"`
	OriginalUrl *string `json:"original_url"`
	SummaryUrl  *string `json:"summary_url"`
}

// TopicPdf is one per-topic PDF surfaced on the topic browsing page.
type TopicPdf struct {
	Newspaper string `json:"newspaper"`
	Url       string `json:"url"`
}

type Newspaper struct {
	Slug        string    `json:"slug"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// IssueDeleteReport summarizes a cascading issue deletion: remote media
// deletion is best-effort, so per-id outcomes are reported rather than
// failing the whole operation.
type IssueDeleteReport struct {
	Media       []MediaDeleteResult `json:"media"`
	RowsDeleted int64               `json:"rows_deleted"`
}
