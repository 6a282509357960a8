package app

import (
	"log/slog"
	"os"

	"github.com/km-arc/go-container/config"
	"github.com/km-arc/go-container/container"
	"github.com/km-arc/go-container/routing"
)

// ── ConfigProvider ───────────────────────────────────────────────────────────

// ConfigProvider loads the application configuration from .env and registers
// it as a singleton *config.Config.
type ConfigProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigProvider) Register(b *container.Builder) {
	envFiles := p.EnvFiles
	container.Singleton(b, func(*container.Resolver) (*config.Config, error) {
		return config.Load(envFiles...), nil
	})
}

// ── LoggerProvider ───────────────────────────────────────────────────────────

// LoggerProvider registers a singleton *slog.Logger whose level follows
// APP_DEBUG.
type LoggerProvider struct {
	container.BaseProvider
}

func (p *LoggerProvider) Register(b *container.Builder) {
	container.Singleton(b, func(sp *container.Resolver) (*slog.Logger, error) {
		cfg, err := container.Resolve[*config.Config](sp)
		if err != nil {
			return nil, err
		}
		level := slog.LevelInfo
		if cfg.App.Debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
	})
}

// ── RoutingProvider ──────────────────────────────────────────────────────────

// RoutingProvider registers the singleton HTTP router and, at boot, installs
// the task-span middleware so every request resolves per-task services in its
// own span. User providers boot after this one, so their routes land behind
// the middleware.
type RoutingProvider struct {
	container.BaseProvider
}

func (p *RoutingProvider) Register(b *container.Builder) {
	container.Singleton(b, func(*container.Resolver) (*routing.Router, error) {
		return routing.New(), nil
	})
}

func (p *RoutingProvider) Boot(sp *container.Resolver) {
	router := container.MustResolve[*routing.Router](sp)
	router.Middleware(TaskSpan(sp))
}
