package main

import (
	"errors"
	"io/fs"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/yehuihe/paper-rock-scissors/internal/config"
)

// version is set by ldflags during build
var version = "1.0"

// Globals are flags shared by every command
type Globals struct {
	Config   kong.ConfigFlag `help:"HCL configuration file" type:"path"`
	LogLevel string          `help:"Log level (debug|info|warn|error); overrides -v" env:"PRS_LOG_LEVEL"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a match (default command)"`
	Simulate SimulateCmd      `cmd:"" help:"Run many computer-vs-computer matches and report statistics"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env file", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("prs"),
		kong.Description("Paper-Rock-Scissors in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Configuration(config.Loader, "prs.hcl", "~/.config/prs/prs.hcl"),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
