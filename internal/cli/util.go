package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func resolveWorkingDirectory() (string, error) {
	rootPath, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return rootPath, nil
}

// IgnoreFile holds gitignore-style rules for scan, relative to the scanned root.
const IgnoreFile = ".javadoclinkignore"

func LoadIgnoreRules(rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, IgnoreFile)
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .javadoclinkignore: %w", err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse .javadoclinkignore: %w", err)
	}

	return rules, nil
}
