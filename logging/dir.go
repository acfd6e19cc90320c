package logging

import (
	"fmt"
	"os"
)

// PrepareResultsDir readies the artifact output directory. With clean
// set the directory is removed and recreated so stale artifacts from a
// previous run cannot mix into the new report; otherwise it is created
// if missing and existing content is left alone.
func PrepareResultsDir(dir string, clean bool) error {
	if clean {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to clean results directory %s: %w", dir, err)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory %s: %w", dir, err)
	}
	return nil
}
