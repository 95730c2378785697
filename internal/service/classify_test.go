package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsrack-dev/newsrack/internal/domain"
)

func TestClassifyBundleFile(t *testing.T) {
	testCases := []struct {
		name      string
		fileName  string
		wantType  domain.FileType
		wantTopic string
	}{
		{"summary by keyword", "economy-summary.pdf", domain.FileTypeSummary, ""},
		{"bundle keyword", "daily-bundle.pdf", domain.FileTypeSummary, ""},
		{"plain summary", "summary.pdf", domain.FileTypeSummary, ""},
		{"uppercase summary", "SUMMARY.PDF", domain.FileTypeSummary, ""},
		{"topic file", "polity-governance.pdf", domain.FileTypeTopic, "polity-governance"},
		{"topic uppercase", "Economy.pdf", domain.FileTypeTopic, "economy"},
		{"topic without extension", "economy", domain.FileTypeTopic, "economy"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ftype, topic := ClassifyBundleFile(tc.fileName)
			assert.Equal(t, tc.wantType, ftype)
			assert.Equal(t, tc.wantTopic, topic)
		})
	}
}
