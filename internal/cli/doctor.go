package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/core/fragment"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for layout validation
func DoctorCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the data layout",
		Long: `Health check for the fragment layout under --root.

Validates:
- data/base.json exists and holds a JSON object
- data/episodes and data/takumi exist
- data/episodes/original and dist exist (created on demand, so only warned)

Examples:
  epidata doctor              # Run full health check
  epidata doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			results := runChecks(cfg)
			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("layout validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func runChecks(cfg *config.Config) []CheckResult {
	return []CheckResult{
		checkBase(cfg),
		checkDir("Episodes", cfg, cfg.EpisodesDir, "✗"),
		checkDir("Takumi", cfg, cfg.CategoryDir, "✗"),
		checkDir("Archive", cfg, cfg.ArchiveDir, "⚠"),
		checkDir("Dist", cfg, cfg.DistDir, "⚠"),
	}
}

func printResults(out io.Writer, results []CheckResult, hasErrors bool) {
	// Print compact table
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, r.Status)
	}
	fmt.Fprintln(out)

	// Print details for non-passing checks
	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintln(out, "\n⚠ Issues found. Run 'epidata init' to create the missing layout.")
	} else {
		fmt.Fprintln(out, "All checks passed.")
	}
}

// checkBase validates that base.json parses as a JSON object
func checkBase(cfg *config.Config) CheckResult {
	data, err := os.ReadFile(cfg.BaseFile)
	if os.IsNotExist(err) {
		return CheckResult{Name: "Base", Status: "✗", Details: "  Missing: " + cfg.Rel(cfg.BaseFile)}
	}
	if err != nil {
		return CheckResult{Name: "Base", Status: "✗", Details: "  " + err.Error()}
	}
	if _, err := fragment.DecodeObject(data); err != nil {
		return CheckResult{
			Name:    "Base",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not a JSON object: %v", cfg.Rel(cfg.BaseFile), err),
		}
	}
	return CheckResult{Name: "Base", Status: "✓"}
}

// checkDir validates that dir exists, reporting status when it does not
func checkDir(name string, cfg *config.Config, dir, status string) CheckResult {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return CheckResult{Name: name, Status: status, Details: "  Missing: " + cfg.Rel(dir) + "/"}
	}
	if err != nil {
		return CheckResult{Name: name, Status: status, Details: "  " + err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Name: name, Status: "✗", Details: "  Not a directory: " + cfg.Rel(dir)}
	}
	return CheckResult{Name: name, Status: "✓"}
}
