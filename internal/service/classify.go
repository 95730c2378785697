package service

import (
	"strings"

	"github.com/newsrack-dev/newsrack/internal/domain"
)

// ClassifyBundleFile decides whether a bundle file is the issue summary
// or a per-topic PDF, from the filename alone. There is no structured
// manifest; a topic PDF whose name happens to contain "summary" will be
// misclassified.
func ClassifyBundleFile(name string) (domain.FileType, string) {
	lower := strings.ToLower(name)
	isSummary := strings.Contains(lower, "summary") ||
		strings.Contains(lower, "bundle") ||
		strings.HasSuffix(lower, "-summary.pdf")
	if isSummary {
		return domain.FileTypeSummary, ""
	}
	return domain.FileTypeTopic, strings.TrimSuffix(lower, ".pdf")
}
