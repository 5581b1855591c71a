package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/srcctx-dev/srcctx/internal/config"
)

// RunDoctor reports the configuration in effect and whether the configured
// build-graph engine can actually be invoked.
func RunDoctor(cmd *cobra.Command, args []string) error {
	workDir, err := resolveWorkingDirectory()
	if err != nil {
		return err
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}
	engine, err := resolveStringFlag(cmd, "engine", cfg.Engine)
	if err != nil {
		return err
	}

	fmt.Printf("engine:         %s\n", engine)
	fmt.Printf("limit:          %d\n", cfg.Limit)
	fmt.Printf("depth:          %d\n", cfg.Depth)
	fmt.Printf("filter-by-ext:  %v\n", cfg.FilterByExt)

	path, err := exec.LookPath(engine)
	if err != nil {
		return fmt.Errorf("build-graph engine %q not found on PATH", engine)
	}
	fmt.Printf("engine path:    %s\n", path)
	fmt.Println("ok")
	return nil
}
