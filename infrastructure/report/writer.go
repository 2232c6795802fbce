package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// separator visually divides reports in a combined batch file.
const separator = "=================================================="

// Save writes rendered reports to a timestamped file in dir, creating the
// directory when necessary, and returns the written path. ext is the
// filename extension without the dot (e.g. "md", "txt").
func Save(dir string, reports []string, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir %s: %w", dir, err)
	}

	name := fmt.Sprintf("order_analysis_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, name)

	content := strings.Join(reports, "\n\n"+separator+"\n\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
