package bot

import (
	"context"
	"fmt"

	"github.com/m3rciful/tasktracker/core/bootstrap"
	corecmd "github.com/m3rciful/tasktracker/core/cmd"
	coreconfig "github.com/m3rciful/tasktracker/core/config"
	"github.com/m3rciful/tasktracker/core/logger"
	coretelegram "github.com/m3rciful/tasktracker/core/telegram"
	"github.com/m3rciful/tasktracker/core/telegram/commands"
	"github.com/m3rciful/tasktracker/core/telegram/router"
	"github.com/m3rciful/tasktracker/core/telegram/state"
	"github.com/m3rciful/tasktracker/internal/categories"
	"github.com/m3rciful/tasktracker/internal/dialog"
	"github.com/m3rciful/tasktracker/internal/tasks"
	"log/slog"
)

// registries bundles the in-memory stores passed through bootstrap.
type registries struct {
	Sessions   state.Manager
	Tasks      *tasks.Registry
	Categories *categories.Registry
}

// App binds the dialogue controller to the Telegram runtime.
type App struct {
	cfg        *coreconfig.Config
	sessions   state.Manager
	controller *dialog.Controller
}

// Carrier adapts the loaded configuration to the runner's expectations.
type Carrier struct {
	cfg *coreconfig.Config
}

// CoreConfig returns the embedded core configuration.
func (c *Carrier) CoreConfig() *coreconfig.Config {
	return c.cfg
}

// LoadConfig reads and validates the bot configuration file.
func LoadConfig(path string) (corecmd.ConfigCarrier, error) {
	cfg, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Carrier{cfg: cfg}, nil
}

// Bootstrap initializes logging, seeds the category registry, and wires the
// dialogue controller.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg := carrier.CoreConfig()

	store := &registries{
		Sessions: state.NewMemoryManager(),
		Tasks:    tasks.NewRegistry(),
	}

	res, err := bootstrap.Run(context.Background(), store, bootstrap.Options{
		Config: cfg,
		Modules: bootstrap.Modules{
			Seeders: []bootstrap.Seeder{
				bootstrap.SeederFunc(seedCategories(cfg)),
			},
			Services: bootstrap.ServiceProviderFunc(provideController),
		},
	})
	if err != nil {
		return nil, err
	}

	controller, ok := res.Services.(*dialog.Controller)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected service type %T", res.Services)
	}

	return &App{
		cfg:        cfg,
		sessions:   store.Sessions,
		controller: controller,
	}, nil
}

// seedCategories fills the shared category registry from config, falling back
// to the built-in default set.
func seedCategories(cfg *coreconfig.Config) bootstrap.SeederFunc {
	return func(ctx context.Context, storage bootstrap.Storage) error {
		store, ok := storage.(*registries)
		if !ok {
			return fmt.Errorf("bot: unexpected storage type %T", storage)
		}
		var seed []string
		for _, name := range cfg.Tracker.Categories {
			if name != "" {
				seed = append(seed, name)
			}
		}
		store.Categories = categories.NewRegistry(seed...)
		logger.SEED.Info("categories seeded",
			slog.String("event", "seed.categories"),
			slog.Int("categories", store.Categories.Len()),
			slog.Bool("from_config", len(seed) > 0),
		)
		return nil
	}
}

func provideController(_ context.Context, _ interface{}, storage bootstrap.Storage) (interface{}, error) {
	store, ok := storage.(*registries)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected storage type %T", storage)
	}
	if store.Categories == nil {
		store.Categories = categories.NewRegistry()
	}
	return dialog.NewController(store.Sessions, store.Tasks, store.Categories), nil
}

// TelegramRunOptions assembles registry, middleware, and routes for the runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.dispatch,
		Description: "начать работу",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.dispatch,
		Description: "доступные команды",
		Aliases:     []string{dialog.LabelHelp},
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     a.dispatch,
		Description: "показать меню",
	})
	reg.RegisterCommand("/add_task", commands.Command{
		Handler:     a.dispatch,
		Description: "добавить задачу",
		Aliases:     []string{dialog.LabelAddTask},
	})
	reg.RegisterCommand("/my_tasks", commands.Command{
		Handler:     a.dispatch,
		Description: "посмотреть задачи",
		Aliases:     []string{dialog.LabelMyTasks},
	})
	reg.RegisterCommand("/done_task", commands.Command{
		Handler:     a.dispatch,
		Description: "выполненные задачи",
		Aliases:     []string{dialog.LabelDoneTasks},
	})
	reg.RegisterCommand("/version", commands.Command{
		Handler:     a.handleVersion,
		Description: "информация о сборке",
		AdminOnly:   true,
		Hidden:      true,
	})

	// Everything that is not a recognized command is conversation input.
	reg.SetTextFallback(a.dispatch)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:        a.cfg.Telegram.AdminID,
		FSM:            a.sessions,
		InConversation: a.dispatch,
	})
	routes = append(routes, router.TextRoutes(a.sessions, reg, router.TextOptions{
		InConversation: a.dispatch,
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}

var _ corecmd.TelegramApp = (*App)(nil)
