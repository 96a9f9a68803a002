package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/trove"
)

type flags struct {
	config   string
	logLevel string
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:           AppName,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&f.config, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level, overrides the config file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run FILE",
			Short: "Evaluate a program, one expression per line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEngine(cmd, fs, f)
				if err != nil {
					return err
				}
				_, err = e.EvalFile(args[0])
				return err
			},
		},
		&cobra.Command{
			Use:   "render [--config FILE] [--log-level LEVEL] [--] LITERAL...",
			Short: "Print each numeric or string literal",
			Long: `Print each numeric or string literal, one per line.

Literals may start with '-', as in "render -2500", so render reads its own
flags. Arguments after "--" are always literals.`,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				rf, literals, help, err := parseRenderArgs(args)
				if err != nil {
					return err
				}
				if help {
					return cmd.Help()
				}
				if len(literals) == 0 {
					return fmt.Errorf("requires at least 1 literal")
				}
				if rf.config == "" {
					rf.config = f.config
				}
				if rf.logLevel == "" {
					rf.logLevel = f.logLevel
				}

				e, err := newEngine(cmd, fs, rf)
				if err != nil {
					return err
				}
				for _, literal := range literals {
					if strings.ContainsAny(literal, "\r\n") {
						return fmt.Errorf("literal %q spans multiple lines", literal)
					}
					if _, err := e.EvalString("print(" + literal + ")"); err != nil {
						return fmt.Errorf("render %s: %w", literal, err)
					}
				}
				return nil
			},
		},
	)

	return rootCmd
}

// parseRenderArgs splits the raw arguments of render into flags and
// literals. Only long flags are recognized, everything else that does not
// follow a flag is a literal.
func parseRenderArgs(args []string) (f flags, literals []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return f, append(literals, args[i+1:]...), help, nil
		case arg == "-h" || arg == "--help":
			help = true
			continue
		case !strings.HasPrefix(arg, "--"):
			literals = append(literals, arg)
			continue
		}

		name, val, hasValue := strings.Cut(arg, "=")
		var target *string
		switch name {
		case "--config":
			target = &f.config
		case "--log-level":
			target = &f.logLevel
		default:
			return flags{}, nil, false, fmt.Errorf("unknown flag: %s", name)
		}
		if !hasValue {
			if i+1 >= len(args) {
				return flags{}, nil, false, fmt.Errorf("flag needs an argument: %s", name)
			}
			i++
			val = args[i]
		}
		*target = val
	}
	return f, literals, help, nil
}

func newEngine(cmd *cobra.Command, fs afero.Fs, f flags) (trove.Engine, error) {
	cfg, err := loadConfig(fs, f.config)
	if err != nil {
		return trove.Engine{}, err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return trove.Engine{}, err
	}

	wd := cfg.WorkingDirectory
	if wd == "" {
		if wd, err = os.Getwd(); err != nil {
			return trove.Engine{}, err
		}
	}
	log.WithFields(logrus.Fields{
		"config":            f.config,
		"working_directory": wd,
	}).Debug("create engine")

	return trove.NewEngine(
		trove.WithStdout(cmd.OutOrStdout()),
		trove.WithStderr(cmd.ErrOrStderr()),
		trove.WithFs(fs),
		trove.WithWorkingDirectory(wd),
		trove.WithLogger(log),
	), nil
}

func newLogger(cmd *cobra.Command, cfg Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05",
		QuoteEmptyFields: true,
		FullTimestamp:    true,
	})
	log.SetLevel(level)
	return log, nil
}
