package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/core/operation"
	"github.com/example/epidata/internal/wire"
)

// runner executes one operation against the layout in cfg.
type runner func(cmd *cobra.Command, cfg *config.Config) error

var runners = map[operation.Kind]runner{
	operation.Build:   runBuild,
	operation.Split:   runSplit,
	operation.Scan:    runScan,
	operation.Migrate: runMigrate,
	operation.Index:   runIndex,
}

// operationCmd returns the subcommand dispatching kind to its runner.
func operationCmd(opts *rootOptions, kind operation.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: kind.Summary(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, kind)
		},
	}

	if kind == operation.Index {
		cmd.Flags().Bool("list", false, "Print the indexed episodes after indexing")
	}

	return cmd
}

// runOperation looks up the runner for kind and runs it under --root.
func runOperation(cmd *cobra.Command, opts *rootOptions, kind operation.Kind) error {
	run, ok := runners[kind]
	if !ok {
		return &operation.UnknownCommandError{Name: kind.String()}
	}
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	return run(cmd, cfg)
}

func runBuild(cmd *cobra.Command, cfg *config.Config) error {
	_, err := wire.FragmentService(cfg, cmd.OutOrStdout()).Build(cmd.Context())
	return err
}

func runSplit(cmd *cobra.Command, cfg *config.Config) error {
	_, err := wire.FragmentService(cfg, cmd.OutOrStdout()).Split(cmd.Context())
	return err
}

func runScan(cmd *cobra.Command, cfg *config.Config) error {
	_, err := wire.FragmentService(cfg, cmd.OutOrStdout()).Scan(cmd.Context())
	return err
}

func runMigrate(cmd *cobra.Command, cfg *config.Config) error {
	_, err := wire.FragmentService(cfg, cmd.OutOrStdout()).Migrate(cmd.Context())
	return err
}

func runIndex(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	service, closeIndex, err := wire.IndexService(cfg, out)
	if err != nil {
		return err
	}
	defer closeIndex()

	if _, err := service.Index(ctx); err != nil {
		return fmt.Errorf("failed to index episodes: %w", err)
	}

	list, _ := cmd.Flags().GetBool("list")
	if !list {
		return nil
	}

	episodes, err := service.ListEpisodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list episodes: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tNUMBER\tNAME\tNAME:ZH\tAIRED\tBUDGET\tPREFECTURE")
	fmt.Fprintln(w, "----\t------\t----\t-------\t-----\t------\t----------")
	for _, e := range episodes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.File, dash(e.Number), dash(e.Name), dash(e.NameZh), dash(e.Aired), dash(e.Budget), dash(e.Prefecture))
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
