package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/classdump/internal/config"
	"github.com/dhamidi/classdump/internal/logging"
)

// quietVerbosity keeps errors only.
const quietVerbosity = -2

type app struct {
	configPath string
	verbose    int
	quiet      bool
	color      string
	logFile    string

	cfg *config.Config
	log commonlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Get("cli")}

	rootCmd := &cobra.Command{
		Use:           "classdump",
		Short:         "Decode and print JVM class files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./"+config.FileName+" if present)")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	flags.StringVar(&a.color, "color", "auto", "color output (auto, always, never)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to a file instead of stderr")

	rootCmd.AddCommand(newDumpCmd(a))
	rootCmd.AddCommand(newConstantsCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the config file and lets flags set on the command line
// override it, then configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, ".")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	cfg.Verbosity += a.verbose
	if a.quiet {
		cfg.Verbosity = quietVerbosity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Configure(cfg.Verbosity, cfg.LogFile)
	if cfg.LogFile != "" {
		// Logs go to the file; let cobra print the error on stderr too.
		cmd.Root().SilenceErrors = false
	}
	a.cfg = cfg
	a.log.Debugf("config: format=%s color=%s verbosity=%d", cfg.Format, cfg.Color, cfg.Verbosity)
	return nil
}
