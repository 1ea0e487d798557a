package bot

import (
	"os"
	"testing"

	coreconfig "github.com/m3rciful/tasktracker/core/config"
	"github.com/m3rciful/tasktracker/core/logger"
)

func TestMain(m *testing.M) {
	// TelegramRunOptions logs through the package-level loggers, which are
	// only wired up by InitLogger during bootstrap.
	if err := logger.InitLogger(&coreconfig.Config{}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
