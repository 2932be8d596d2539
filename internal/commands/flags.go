package commands

import (
	"github.com/colonyops/listdemo/internal/core/config"
)

// Flags holds the global flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}
