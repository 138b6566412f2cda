package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/ports/secondary"
	"github.com/example/epidata/internal/wire"
)

// InitCmd returns the init command
func InitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data and dist directories",
		Long: `Create the fragment layout under --root: data/episodes, data/episodes/original,
data/takumi, dist, and an empty data/base.json. Existing files are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Initializing epidata layout at %s\n", cfg.Root)
			if err := initLayout(cmd.Context(), cfg, wire.FragmentStore(), out); err != nil {
				return fmt.Errorf("failed to initialize layout: %w", err)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  add episodes to data/episodes/<number>.json")
			fmt.Fprintln(out, "  epidata build")
			return nil
		},
	}
}

// initLayout creates every missing directory and an empty base document.
func initLayout(ctx context.Context, cfg *config.Config, store secondary.FragmentStore, out io.Writer) error {
	check := color.New(color.FgGreen).Sprint("✓")

	for _, dir := range []string{cfg.EpisodesDir, cfg.ArchiveDir, cfg.CategoryDir, cfg.DistDir} {
		exists, err := store.Exists(ctx, dir)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := store.CreateDirectory(ctx, dir); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Created %s/\n", check, cfg.Rel(dir))
	}

	exists, err := store.Exists(ctx, cfg.BaseFile)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := store.WriteFile(ctx, cfg.BaseFile, []byte("{}")); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Created %s\n", check, cfg.Rel(cfg.BaseFile))
	return nil
}
