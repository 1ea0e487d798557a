package bootstrap

import (
	"context"
	"fmt"

	coreconfig "github.com/m3rciful/tasktracker/core/config"
	"github.com/m3rciful/tasktracker/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
	Modules    Modules
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Services interface{}
}

// Run initializes the logger, executes seeders, and wires application services.
func Run(ctx context.Context, storage Storage, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	for _, seeder := range opts.Modules.Seeders {
		if seeder == nil {
			continue
		}
		if err := seeder.Seed(ctx, storage); err != nil {
			return nil, fmt.Errorf("bootstrap: seeding failed: %w", err)
		}
	}

	res := &Result{}
	if opts.Modules.Services != nil {
		services, err := opts.Modules.Services.Provide(ctx, opts.Config, storage)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: service wiring failed: %w", err)
		}
		res.Services = services
	}

	return res, nil
}
