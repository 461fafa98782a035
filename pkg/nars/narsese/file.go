package narsese

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads path and returns every non-blank, non-"#"-comment line,
// trimmed, in order — the plain-text batch-input format cmd/nars-snapshot
// seeds a reasoner from.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("narsese: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("narsese: scan %s: %w", path, err)
	}
	return lines, nil
}
