package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadCredits reads a newline separated credit role vocabulary. Blank lines
// and lines starting with '#' are skipped.
func LoadCredits(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open credits file: %w", err)
	}
	defer file.Close()

	roles := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roles[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read credits file: %w", err)
	}
	return roles, nil
}
