package application

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bob-config/internal/config"
	"github.com/eugenenazirov/bob-config/internal/paths"
)

// Options holds values resolved from the command line.
type Options struct {
	// ConfigFile overrides the resolved config location when non-empty.
	ConfigFile string
	// Lookup resolves environment variables. Defaults to the process environment.
	Lookup func(name string) (string, bool)
}

// App encapsulates the resolved config path and the loader reading it.
type App struct {
	configPath string
	loader     *config.Loader
	logger     *zap.Logger
}

// New resolves the config file location and prepares a loader for it.
func New(opts Options, logger *zap.Logger) (*App, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	path := opts.ConfigFile
	if path == "" {
		resolved, err := paths.ConfigFile(lookup)
		if err != nil {
			return nil, fmt.Errorf("failed to locate config file: %w", err)
		}
		path = resolved
	}

	logger.Debug("config file resolved", zap.String("path", path))

	return &App{
		configPath: path,
		loader:     config.NewLoader(config.WithLookup(lookup), config.WithLogger(logger)),
		logger:     logger,
	}, nil
}

// ConfigPath returns the config file location the App reads.
func (a *App) ConfigPath() string {
	return a.configPath
}

// Config loads the config file. Each call reads the file again.
func (a *App) Config() (config.Config, error) {
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		a.logger.Error("failed to load configuration",
			zap.String("path", a.configPath),
			zap.Error(err),
		)
		return config.Config{}, err
	}
	return cfg, nil
}

// Show writes the effective configuration to w in the given output format.
// Unset settings are omitted.
func (a *App) Show(w io.Writer, format string) error {
	cfg, err := a.Config()
	if err != nil {
		return err
	}

	out, err := Render(cfg, format)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// Path writes the config file location and whether it exists to w.
func (a *App) Path(w io.Writer) error {
	state := "missing"
	if info, err := os.Stat(a.configPath); err == nil && !info.IsDir() {
		state = "present"
	}

	_, err := fmt.Fprintf(w, "%s (%s)\n", a.configPath, state)
	return err
}
