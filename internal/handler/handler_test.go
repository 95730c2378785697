package handler_test

import (
	"context"
	"net/http"

	"github.com/newsrack-dev/newsrack/internal/config"
	"github.com/newsrack-dev/newsrack/internal/handler"
	"github.com/newsrack-dev/newsrack/internal/router"
	"github.com/newsrack-dev/newsrack/internal/service"
	"github.com/newsrack-dev/newsrack/internal/setup"
)

type mockPinger struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

type testDeps struct {
	media      service.MediaService
	files      service.FileService
	issues     service.IssueService
	newspapers service.NewspaperService
	health     handler.Pinger
}

// newTestRouter builds the real router around mock services so tests
// exercise routing and method matching, not just the handler funcs.
func newTestRouter(deps testDeps) http.Handler {
	if deps.media == nil {
		deps.media = &MockMediaService{}
	}
	if deps.files == nil {
		deps.files = &MockFileService{}
	}
	if deps.issues == nil {
		deps.issues = &MockIssueService{}
	}
	if deps.newspapers == nil {
		deps.newspapers = &MockNewspaperService{}
	}
	if deps.health == nil {
		deps.health = &mockPinger{}
	}
	cfg := config.NewForTesting(config.Public{MaxBundleSize: 10 << 20}, config.Private{})
	h := handler.New(deps.media, deps.files, deps.issues, deps.newspapers, deps.health, cfg)
	return router.New(&setup.Dependencies{Handler: h})
}
