package app

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/go-container/config"
	"github.com/km-arc/go-container/container"
	"github.com/km-arc/go-container/routing"
)

// Application is the top-level kernel: a frozen service container plus the
// HTTP entry point. Everything the application uses (config, logger, router,
// user services) is registered by providers and resolved from the container.
type Application struct {
	Resolver *container.Resolver
}

// New bootstraps the application: core providers (config, logger, routing)
// register first, then the given providers, then the container is built and
// every provider boots.
//
//	application := app.New(&AppProvider{})
//	application.Run()
func New(providers ...container.Provider) *Application {
	core := []container.Provider{
		&ConfigProvider{},
		&LoggerProvider{},
		&RoutingProvider{},
	}
	sp := container.BuildProviders(container.NewBuilder(), append(core, providers...)...)
	return &Application{Resolver: sp}
}

// Config resolves the application configuration.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Resolver)
}

// Router resolves the HTTP router.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Resolver)
}

// Log resolves the application logger.
func (a *Application) Log() *slog.Logger {
	return container.MustResolve[*slog.Logger](a.Resolver)
}

// Run starts the HTTP server on APP_PORT (default 8000) and blocks.
func (a *Application) Run() error {
	cfg := a.Config()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      a.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	a.Log().Info("server starting",
		"app", cfg.App.Name,
		"addr", srv.Addr,
		"env", cfg.App.Env,
	)
	return srv.ListenAndServe()
}
