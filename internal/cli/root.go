package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcctx-dev/srcctx/internal/buildgraph"
	"github.com/srcctx-dev/srcctx/internal/config"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srcctx <source_file>",
		Short: "Print build-graph source context for a file",
		Long: `Srcctx asks the build graph which files matter for a given source file -
its package siblings and the closure of its build and reverse-build
dependencies - then prints them closest-first until a line budget runs out.

Always-include files print before anything else and skip extension
filtering. Everything diagnostic goes to stderr; only file contents go
to stdout.`,
		Args:         cobra.ExactArgs(1),
		RunE:         RunContext,
		SilenceUsage: true,
	}

	rootCmd.Flags().IntP("limit", "l", config.DefaultLimit, "Maximum total number of lines to print")
	rootCmd.Flags().IntP("depth", "d", config.DefaultDepth, "Dependency traversal depth")
	rootCmd.Flags().StringSliceP("include-file-types", "i", nil, "Extensions to include (comma-separated)")
	rootCmd.Flags().StringSliceP("always-include", "a", nil, "Files to always print first (comma-separated)")
	rootCmd.Flags().Bool("filter-by-ext", true, "Filter candidates by the subject file's extension")
	rootCmd.Flags().String("strategy", buildgraph.DefaultStrategy, "Dependency discovery strategy: combined|pivot")

	rootCmd.PersistentFlags().String("engine", config.DefaultEngine, "Build-graph engine binary")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase diagnostic verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress diagnostics")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the build-graph engine is available",
		RunE:  RunDoctor,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("srcctx %s\n", version)
		},
	}

	rootCmd.AddCommand(doctorCmd, versionCmd)
	return rootCmd
}
