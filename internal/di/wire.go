//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"postboard/internal/adapter/logging"
	"postboard/internal/adapter/page"
	"postboard/internal/adapter/placeholder"
	"postboard/internal/adapter/web"
	"postboard/internal/app"
	"postboard/internal/config"
	"postboard/internal/domain/ports"
	"postboard/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		providePublicationProvider,
		provideTitleSorter,
		providePageStore,
		wire.Bind(new(ports.Mount), new(*page.Store)),
		usecase.NewBoard,
		wire.Bind(new(app.Pass), new(*usecase.Board)),
		provideServer,
		wire.Bind(new(app.Server), new(*web.Server)),
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewJSONLogger(os.Stdout, level), nil
}

func providePublicationProvider(cfg *config.Config, logger ports.Logger) ports.PublicationProvider {
	return placeholder.New(cfg.APIURL, cfg.RequestTimeout, cfg.PublicationLimit, logger)
}

func provideTitleSorter(cfg *config.Config) *usecase.TitleSorter {
	return usecase.NewTitleSorter(cfg.SortLocale)
}

func providePageStore(cfg *config.Config, logger ports.Logger) (*page.Store, error) {
	hostPage, err := page.LoadHostPage(cfg.HostPage)
	if err != nil {
		return nil, err
	}
	return page.NewStore(hostPage, cfg.OutputPath, logger), nil
}

func provideServer(store *page.Store, logger ports.Logger) (*web.Server, error) {
	return web.New(store, page.Assets(), logger)
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		ListenAddr:  cfg.ListenAddr,
		RefreshCron: cfg.RefreshCron,
	}
}
