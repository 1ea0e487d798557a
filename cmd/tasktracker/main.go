package main

import (
	"log"

	corecmd "github.com/m3rciful/tasktracker/core/cmd"
	"github.com/m3rciful/tasktracker/internal/bot"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig:        bot.LoadConfig,
		Bootstrap:         bot.Bootstrap,
	})
	if err != nil {
		log.Fatalf("tasktracker: %v", err)
	}
}
