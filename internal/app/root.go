package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rdapconformance/rdapcv/internal/config"
	"github.com/rdapconformance/rdapcv/internal/engine"
	"github.com/rdapconformance/rdapcv/internal/fs"
)

// Version is the current version of rdapcv, set at build time.
var Version = "dev"

const (
	// ConfigEnvVar names the environment variable that can point at a
	// non-default rdapcv-config.yml.
	ConfigEnvVar = "RDAPCV_CONFIG_FILE"
	// DefaultConfigFile is used when neither --config nor ConfigEnvVar is set.
	DefaultConfigFile = "rdapcv-config.yml"
)

// Banner with colour codes.
var Banner = "\033[32m" + `
 ____  ____    _    ____     ______     __
|  _ \|  _ \  / \  |  _ \   / ___\ \   / /
| |_) | | | |/ _ \ | |_) | | |    \ \ / /
|  _ <| |_| / ___ \|  __/  | |___  \ V /
|_| \_\____/_/   \_\_|      \____|  \_/
` + "\033[0m"

var LongDescription = `
rdapcv is a conformance validator for RDAP responses. It checks a captured
RDAP response, or one fetched live from a query URI, against the RDAP JSON
response schemas and the ICANN RDAP Response Profile, reporting every
deviation found.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var configPath string

	var eng *engine.Engine
	var logger *slog.Logger
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:           "rdapcv",
		Short:         "A conformance validator for RDAP responses",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion, and the bare root
			// command (which only prints help).
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd == cmd.Root() {
				return nil
			}

			if debug {
				ll.Set(slog.LevelDebug)
			}

			if configPath == "" {
				configPath = envProvider.Get(ConfigEnvVar)
			}
			if configPath == "" {
				configPath = DefaultConfigFile
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("configuration load failed: %w", err)
			}

			logger, logCloser, err = setupLogger(stderr, ll, "")
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			eng, err = engine.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("engine initialisation failed: %w", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to rdapcv-config.yml (overrides env/default)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")

	// Subcommands
	rootCmd.AddCommand(NewValidateCmd(func() (*engine.Engine, *slog.Logger) { return eng, logger }))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
