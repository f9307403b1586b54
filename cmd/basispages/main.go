// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command basispages generates the per-basis requirement pages of the
// labor-hr docs tree. Run without arguments from the repository root to
// process the full event batch.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/basis-pages/pkg/basispages"
)

type options struct {
	root       string
	configPath string
	dryRun     bool
	verbose    bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "basispages",
		Short: "Generate per-basis requirement pages for the labor-hr database",
		Long: `Reads the audit checklist CSV of every configured event, groups the
requirements by legal basis, and writes one page per basis next to the
template page. Pages that already exist are left untouched.

Settings come from basis-pages.yaml in --root when present, otherwise
from the built-in defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Encoding = "console"
			config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			basispages.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
			basispages.SetLogger(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.root, "root", ".", "repository root containing the docs tree")
	flags.StringVar(&opts.configPath, "config", "", "path to a configuration YAML file (default: <root>/"+basispages.DefaultConfigFile+" if present)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report what would be generated without writing files")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate missing pages (same as running without a subcommand)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGenerate(cmd, opts)
			},
		},
		newHashCmd(),
		&cobra.Command{
			Use:   "check",
			Short: "Report missing and orphaned pages without writing anything",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := resolveConfig(cmd, opts)
				if err != nil {
					return err
				}
				g, err := basispages.New(cfg)
				if err != nil {
					return err
				}
				res, err := g.Analyze()
				if err != nil {
					return err
				}
				return res.Print(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := resolveConfig(cmd, opts)
				if err != nil {
					return err
				}
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)
	return root
}

func newHashCmd() *cobra.Command {
	var eventID string
	cmd := &cobra.Command{
		Use:   "hash NAME LOCATOR [URL]",
		Short: "Print the page identifier of a basis",
		Long: `Prints the 10 character identifier used in page file names for the
given basis. With --event the full page file name is printed as well,
which is the value to put in an exceptions entry.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := basispages.Basis{Name: args[0], Locator: args[1]}
			if len(args) == 3 {
				b.URL = args[2]
			}
			hash := b.Hash()
			out := cmd.OutOrStdout()
			if eventID == "" {
				_, err := fmt.Fprintln(out, hash)
				return err
			}
			_, err := fmt.Fprintf(out, "%s\t%s\n", hash, basispages.PageFileName(eventID, hash))
			return err
		},
	}
	cmd.Flags().StringVar(&eventID, "event", "", "event identifier used to build the page file name")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	g, err := basispages.New(cfg)
	if err != nil {
		return err
	}
	rep, err := g.Run()
	if err != nil {
		return err
	}
	return rep.Print(cmd.OutOrStdout())
}

// resolveConfig loads --config, else <root>/basis-pages.yaml when it
// exists, else the defaults. An explicit --root always wins over the
// root recorded in the file.
func resolveConfig(cmd *cobra.Command, opts *options) (basispages.Config, error) {
	path := opts.configPath
	if path == "" {
		candidate := filepath.Join(opts.root, basispages.DefaultConfigFile)
		_, err := os.Stat(candidate)
		switch {
		case err == nil:
			path = candidate
		case !errors.Is(err, fs.ErrNotExist):
			return basispages.Config{}, fmt.Errorf("checking %s: %w", candidate, err)
		}
	}

	cfg := basispages.DefaultConfig()
	if path != "" {
		loaded, err := basispages.LoadConfig(path)
		if err != nil {
			return basispages.Config{}, err
		}
		cfg = loaded
	}
	if path == "" || cmd.Flags().Changed("root") {
		cfg.Paths.Root = opts.root
	}
	if opts.dryRun {
		cfg.DryRun = true
	}
	return cfg, nil
}
