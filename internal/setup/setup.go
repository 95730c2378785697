package setup

import (
	"github.com/newsrack-dev/newsrack/internal/config"
	"github.com/newsrack-dev/newsrack/internal/handler"
	"github.com/newsrack-dev/newsrack/internal/mediastore"
	"github.com/newsrack-dev/newsrack/internal/service"
	"github.com/newsrack-dev/newsrack/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg.Public.Pg, cfg.PgPassword())
	if err != nil {
		return nil, err
	}

	media := mediastore.New(cfg.ImageKitPrivateKey(), cfg.Public.ImageKit.PublicKey, cfg.Public.ImageKit.UrlEndpoint)

	mediaSvc := service.NewMedia(media)
	fileSvc := service.NewFile(storage, storage)
	issueSvc := service.NewIssue(media, storage, storage)
	newspaperSvc := service.NewNewspaper(storage)

	h := handler.New(mediaSvc, fileSvc, issueSvc, newspaperSvc, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
	}, nil
}
