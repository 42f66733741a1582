package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/bob-config/internal/application"
	"github.com/eugenenazirov/bob-config/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bob-config: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("bob-config", "Inspect the bob configuration file")
	configFile := kingpinApp.Flag("config", "Path to the config file (overrides BOB_CONFIG)").String()
	debug := kingpinApp.Flag("debug", "Log config resolution details to stderr").Bool()

	showCmd := kingpinApp.Command("show", "Print the effective configuration").Default()
	format := showCmd.Flag("format", "Output format").Default(application.FormatYAML).Enum(application.Formats()...)

	pathCmd := kingpinApp.Command("path", "Print the config file location")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Debug: *debug})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(application.Options{ConfigFile: *configFile}, logger)
	if err != nil {
		return err
	}

	switch command {
	case showCmd.FullCommand():
		return app.Show(stdout, *format)
	case pathCmd.FullCommand():
		return app.Path(stdout)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
