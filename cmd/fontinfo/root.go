package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/fontengine"
	"github.com/gogpu/fontengine/bitmap"
	"github.com/gogpu/fontengine/config"
)

// app holds state shared by all commands.
type app struct {
	out     io.Writer
	logger  *log.Logger
	verbose bool

	configPath string
	assetsDir  string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out: out,
		logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fontinfo",
		Short:        "Inspect font resolution for a client configuration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
			fontengine.SetLogger(slog.New(a.logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML settings file")
	root.PersistentFlags().StringVar(&a.assetsDir, "assets", "", "directory bitmap font names are relative to")

	root.AddCommand(a.resolveCommand())
	root.AddCommand(a.probeCommand())
	root.AddCommand(a.configCommand())
	return root
}

// settings returns the compiled-in settings overlaid with --config.
func (a *app) settings() (*config.Settings, error) {
	s := config.New()
	if a.configPath == "" {
		return s, nil
	}
	if err := s.LoadFile(a.configPath); err != nil {
		return nil, err
	}
	a.logger.Debug("loaded settings", "path", a.configPath)
	return s, nil
}

// store returns the bitmap asset store for --assets.
func (a *app) store() *bitmap.Store {
	if a.assetsDir == "" {
		return bitmap.NewStore(nil)
	}
	return bitmap.NewStore(os.DirFS(a.assetsDir))
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the settings loaded from --config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			return s.WriteTOML(a.out)
		},
	}
}

// parseMode converts a --mode value into a request mode.
func parseMode(s string) (fontengine.RequestMode, error) {
	if s == "" || strings.EqualFold(s, "unspecified") {
		return fontengine.RequestUnspecified, nil
	}
	for _, m := range fontengine.Modes {
		if strings.EqualFold(s, m.String()) {
			return m.Request(), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want standard, fallback, mono, simple or simplemono)", s)
}

// parseSize converts a --size value into a size request. Negative values
// select the mode's default.
func parseSize(n int) (fontengine.SizeRequest, error) {
	switch {
	case n < 0:
		return fontengine.SizeUnspecified, nil
	case uint64(n) >= uint64(fontengine.SizeUnspecified):
		return 0, fmt.Errorf("font size %d out of range (max %d)", n, uint32(fontengine.SizeUnspecified)-1)
	}
	return fontengine.SizeRequest(n), nil
}
