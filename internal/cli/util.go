package cli

import (
	"fmt"
	"os"
)

func resolveWorkingDirectory() (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return workDir, nil
}
