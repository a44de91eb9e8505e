package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path as TOML with tables sorted by name,
// so repeated writes of the same config are byte-identical. The file is
// replaced atomically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(sortTOMLSections(buf.String())); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

type tomlTable struct {
	name  string
	lines []string
}

// sortTOMLSections reorders tables alphabetically. Keys before the first
// table stay on top.
func sortTOMLSections(content string) string {
	var preamble []string
	var tables []tomlTable

	for _, line := range strings.Split(content, "\n") {
		if match := tableHeader.FindStringSubmatch(line); match != nil {
			tables = append(tables, tomlTable{name: match[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].name < tables[j].name
	})

	blocks := make([]string, 0, len(tables)+1)
	if head := strings.TrimSpace(strings.Join(preamble, "\n")); head != "" {
		blocks = append(blocks, strings.TrimRight(strings.Join(preamble, "\n"), "\n"))
	}
	for _, t := range tables {
		blocks = append(blocks, strings.TrimRight(strings.Join(t.lines, "\n"), "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
