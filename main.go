// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
 _                                      
| |_ _ __ ___  ___  ___ _ __ ___  _ __  
| __| '__/ _ \/ _ \/ __| '_ ' _ \| '_ \ 
| |_| | |  __/  __/ (__| | | | | | |_) |
 \__|_|  \___|\___|\___|_| |_| |_| .__/ 
                                 |_|    
Binary search tree vs. AVL tree, side by side [Version: %s%s%s]
`

// cliOptions are the persistent flags shared by every command.
type cliOptions struct {
	configPath string
	keyType    string
	logLevel   string
	noColor    bool

	config  *Config
	keyKind KeyType
	styles  *Styles
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %s\n", Error, Reset, err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	var rootCmd = &cobra.Command{
		Use:           "treecmp",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the configured scenarios when no subcommand is provided
			return runScenarios(cmd, opts, false)
		},
	}
	rootCmd.Long = fmt.Sprintf(asciiLogo, "", version, "")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.keyType, "type", "", "key type: int or string (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newCompareCommand(opts),
		newScenariosCommand(opts),
		newRenderCommand(opts),
		newBenchCommand(opts),
		newExploreCommand(opts),
		newSettingsCommand(opts),
		newUsageCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// load resolves config, logger, key type and colors before any command runs.
func (o *cliOptions) load(cmd *cobra.Command) error {
	path, err := getConfigPath(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	config, cfgErr := LoadConfig(path)
	o.config = config
	if o.logLevel != "" {
		o.config.Log.Level = o.logLevel
	}
	logger = newLogger(o.config.Log, cmd.ErrOrStderr())
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default settings")
	}

	kind := string(o.config.KeyType)
	if o.keyType != "" {
		kind = o.keyType
	}
	if o.keyKind, err = ParseKeyType(kind); err != nil {
		return err
	}

	color := o.config.Report.Color && !o.noColor
	InitializeColors(color)
	o.styles = NewStyles(color)
	return nil
}

// searchWords prefers --search values, each taken as one key exactly like a
// positional key, over the configured search_keys list.
func (o *cliOptions) searchWords(flagValues []string) ([]string, error) {
	if len(flagValues) > 0 {
		return append([]string{}, flagValues...), nil
	}
	return splitKeys(o.config.SearchKeys)
}

func newCompareCommand(opts *cliOptions) *cobra.Command {
	var keyList string
	var search []string
	var shape bool

	cmd := &cobra.Command{
		Use:   "compare [keys...]",
		Short: "Build a BST and an AVL tree from the same keys and compare them",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := collectKeys(args, keyList)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return errors.New("no keys given; pass them as arguments or with --keys")
			}
			searchWords, err := opts.searchWords(search)
			if err != nil {
				return err
			}

			r, err := buildReport("compare", opts.keyKind, words, searchWords)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatReport(r, opts.styles, shape || opts.config.Report.ShowShape))
			return nil
		},
	}
	cmd.Flags().StringVar(&keyList, "keys", "", "keys to insert, separated by spaces or commas")
	cmd.Flags().StringArrayVar(&search, "search", nil, "key to search for (repeatable; default from config)")
	cmd.Flags().BoolVar(&shape, "shape", false, "draw both tree shapes")
	return cmd
}

func newScenariosCommand(opts *cliOptions) *cobra.Command {
	var shape bool
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run every scenario from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, shape)
		},
	}
	cmd.Flags().BoolVar(&shape, "shape", false, "draw both tree shapes")
	return cmd
}

func runScenarios(cmd *cobra.Command, opts *cliOptions, shape bool) error {
	searchWords, err := opts.searchWords(nil)
	if err != nil {
		return err
	}

	reports := NewReportCache()
	for _, sc := range opts.config.Scenarios {
		words, err := splitKeys(sc.Keys)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		r, err := GetOrBuildReport(reports, sc.Name, opts.keyKind, words, searchWords)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatReport(r, opts.styles, shape || opts.config.Report.ShowShape))
	}
	return nil
}

func newRenderCommand(opts *cliOptions) *cobra.Command {
	var keyList string
	cmd := &cobra.Command{
		Use:   "render [keys...]",
		Short: "Draw the BST and AVL shapes built from the keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := collectKeys(args, keyList)
			if err != nil {
				return err
			}
			r, err := buildReport("render", opts.keyKind, words, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ts := range []TreeSummary{r.BST, r.AVL} {
				fmt.Fprintf(out, "%s (height %d)\n%s\n\n", opts.styles.paint(opts.styles.Title, ts.Kind), ts.Height, orEmpty(ts.Shape))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyList, "keys", "", "keys to insert, separated by spaces or commas")
	return cmd
}

func newBenchCommand(opts *cliOptions) *cobra.Command {
	var (
		size       int
		seed       uint64
		maxKey     int
		noProgress bool
		metrics    bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert random distinct keys and compare heights and timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config.Bench
			if cmd.Flags().Changed("size") {
				cfg.Size = size
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("max-key") {
				cfg.MaxKey = maxKey
			}
			if noProgress {
				cfg.Progress = false
			}
			if cfg.MaxKey < cfg.Size {
				return fmt.Errorf("cannot draw %d distinct keys below %d", cfg.Size, cfg.MaxKey)
			}

			ctx := &BenchContext{
				Context:    cmd.Context(),
				Log:        logger.With().Str("cmd", "bench").Logger(),
				Config:     cfg,
				Metrics:    newTreeMetrics(),
				ProgressTo: cmd.ErrOrStderr(),
			}
			res, err := ctx.Run()
			if err != nil {
				return err
			}

			formatBenchResult(cmd.OutOrStdout(), res)
			if metrics {
				return ctx.Metrics.WriteText(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "number of distinct keys (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the key generator (default from config)")
	cmd.Flags().IntVar(&maxKey, "max-key", 0, "keys are drawn from [0, max-key) (default from config)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print Prometheus metrics after the run")
	return cmd
}

func newExploreCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Insert keys interactively and watch both trees change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.keyKind == KeyTypeString {
				return runExplore(parseStringKeys, opts.styles)
			}
			return runExplore(parseIntKeys, opts.styles)
		},
	}
}

func newSettingsCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := getConfigPath(opts.configPath)
			if err != nil {
				return err
			}
			return displaySettings(cmd.OutOrStdout(), path)
		},
	}
}

func newUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Print treecmp usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print treecmp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
