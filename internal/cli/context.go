package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcctx-dev/srcctx/internal/assemble"
	"github.com/srcctx-dev/srcctx/internal/buildgraph"
	"github.com/srcctx-dev/srcctx/internal/config"
	"github.com/srcctx-dev/srcctx/internal/emit"
	"github.com/srcctx-dev/srcctx/internal/logutil"
)

// ContextOptions are the fully resolved settings for one retrieval run.
type ContextOptions struct {
	Subject       string
	Limit         int
	Depth         int
	Extensions    []string
	AlwaysInclude []string
	FilterByExt   bool
	Engine        string
	Strategy      string

	// Runner substitutes the engine subprocess in tests. Nil spawns the
	// real engine binary.
	Runner buildgraph.CommandRunner
	// Distance substitutes the proximity metric in tests.
	Distance func(a, b string) int
}

func RunContext(cmd *cobra.Command, args []string) error {
	workDir, err := resolveWorkingDirectory()
	if err != nil {
		return err
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}
	level, err := diagnosticLevel(cmd, cfg)
	if err != nil {
		return err
	}

	opts, err := contextOptions(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	return RetrieveContext(os.Stdout, logutil.NewLogger(os.Stderr, level), opts)
}

func contextOptions(cmd *cobra.Command, cfg *config.Config, subject string) (ContextOptions, error) {
	limit, err := resolveIntFlag(cmd, "limit", cfg.Limit)
	if err != nil {
		return ContextOptions{}, err
	}
	depth, err := resolveIntFlag(cmd, "depth", cfg.Depth)
	if err != nil {
		return ContextOptions{}, err
	}
	filterByExt, err := resolveBoolFlag(cmd, "filter-by-ext", cfg.FilterByExt)
	if err != nil {
		return ContextOptions{}, err
	}
	engine, err := resolveStringFlag(cmd, "engine", cfg.Engine)
	if err != nil {
		return ContextOptions{}, err
	}
	strategy, err := cmd.Flags().GetString("strategy")
	if err != nil {
		return ContextOptions{}, err
	}
	extensions, err := stringSliceFlag(cmd, "include-file-types")
	if err != nil {
		return ContextOptions{}, err
	}
	alwaysInclude, err := stringSliceFlag(cmd, "always-include")
	if err != nil {
		return ContextOptions{}, err
	}

	return ContextOptions{
		Subject:       subject,
		Limit:         limit,
		Depth:         depth,
		Extensions:    extensions,
		AlwaysInclude: alwaysInclude,
		FilterByExt:   filterByExt,
		Engine:        engine,
		Strategy:      strategy,
	}, nil
}

// RetrieveContext runs the pipeline: always-include files first, then the
// package's dependency closure ranked by proximity, filtered by extension,
// deduplicated globally, and emitted until the line budget runs out.
func RetrieveContext(w io.Writer, logger *slog.Logger, opts ContextOptions) error {
	runner := opts.Runner
	var client *buildgraph.Client
	if runner != nil {
		client = buildgraph.NewClientWithRunner(opts.Engine, logger, runner)
	} else {
		client = buildgraph.NewClient(opts.Engine, logger)
	}
	strategy, err := buildgraph.NewStrategy(opts.Strategy, client)
	if err != nil {
		return err
	}

	st := emit.NewState()

	// Always-include files print before any query runs and bypass
	// extension filtering. If they alone exhaust the budget, no query is
	// ever issued.
	emit.Files(w, logger, opts.AlwaysInclude, opts.Limit, st)
	if st.Exhausted(opts.Limit) {
		return nil
	}

	rawLists, err := strategy.Discover(opts.Subject, opts.Depth)
	if err != nil {
		return err
	}

	ranked := assemble.RankedFiles(rawLists, assemble.Options{
		Subject:           opts.Subject,
		Extensions:        opts.Extensions,
		FilterByExtension: opts.FilterByExt,
		Distance:          opts.Distance,
	})
	emit.Files(w, logger, ranked, opts.Limit, st)

	logger.Info("context emitted", "strategy", strategy.Name(), "lines", st.LinesPrinted, "limit", opts.Limit)
	return nil
}
