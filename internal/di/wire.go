//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/devconsole/pkg/config"
	"github.com/kcaldas/devconsole/pkg/console"
	"github.com/kcaldas/devconsole/pkg/events"
	"github.com/kcaldas/devconsole/pkg/logging"
)

// Wire providers for the console session

// ProvideEventBus provides a new bus for each session
func ProvideEventBus() *events.Bus {
	return events.NewBus()
}

// ProvideLogger provides the console component logger
func ProvideLogger() logging.Logger {
	return logging.NewComponentLogger("console")
}

// ProvideConfig loads the effective configuration
func ProvideConfig(manager config.Manager) (config.Config, error) {
	return manager.Load()
}

// ProvideSessionOptions maps configuration onto session options
func ProvideSessionOptions(cfg config.Config, bus *events.Bus, logger logging.Logger) []console.Option {
	return []console.Option{
		console.WithEventBus(bus),
		console.WithLogger(logger),
		console.WithStartOpen(cfg.StartOpen),
		console.WithClearHotkey(console.Key(cfg.ClearHotkey)),
		console.WithHistorySize(cfg.HistorySize),
		console.WithBanner(cfg.Banner),
	}
}

// ProvideSession creates and initialises a session
func ProvideSession(input console.InputSource, output console.OutputSink, opts []console.Option) (*console.Session, error) {
	session := console.NewSession(input, output, opts...)
	if err := session.Init(); err != nil {
		return nil, err
	}
	return session, nil
}

// Wire injectors

// InitializeSession builds a ready-to-use session from an already loaded
// configuration.
func InitializeSession(cfg config.Config, input console.InputSource, output console.OutputSink) (*console.Session, error) {
	wire.Build(
		ProvideEventBus,
		ProvideLogger,
		ProvideSessionOptions,
		ProvideSession,
	)
	return nil, nil
}

// InitializeConfig loads configuration through manager
func InitializeConfig(manager config.Manager) (config.Config, error) {
	wire.Build(ProvideConfig)
	return config.Config{}, nil
}
