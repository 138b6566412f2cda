// Package cli implements the epidata command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/core/operation"
	"github.com/example/epidata/internal/version"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	root    string
	noColor bool
}

// config returns the validated layout under the --root directory.
func (o *rootOptions) config() (*config.Config, error) {
	cfg := config.New(o.root)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewRootCmd returns the epidata root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "epidata",
		Short:   "Maintain the episode data set as one fragment file per record",
		Version: version.String(),
		Long: `epidata keeps a JSON data set as small fragment files under data/ and
merges them into dist/data.json.

Operations:
  build   merge data/base.json, data/episodes and data/takumi into dist/data.json
  split   write every numbered episode of dist/data.json back to data/episodes
  scan    report episodes missing budget or prefecture
  fix1    split "title": "<name>（<name:zh>）" into name and name:zh
  index   load data/episodes into the SQLite index dist/data.db`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &operation.UnknownCommandError{}
			}
			kind, err := operation.Parse(args[0])
			if err != nil {
				return err
			}
			return runOperation(cmd, opts, kind)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", ".", "Project root containing data/ and dist/")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	for _, kind := range operation.Kinds() {
		rootCmd.AddCommand(operationCmd(opts, kind))
	}
	rootCmd.AddCommand(InitCmd(opts))
	rootCmd.AddCommand(DoctorCmd(opts))

	return rootCmd
}
