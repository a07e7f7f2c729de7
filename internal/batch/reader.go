package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CardEntry is one term/definition pair read from a seed file. Either side
// may be empty; validation happens when the entry is loaded.
type CardEntry struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
	Line       int    `yaml:"-"`
}

// SetEntry is a named group of card entries.
type SetEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// ReadBatchFile reads sets from a file. The format is chosen by extension:
// .yaml and .yml are parsed as YAML, anything else as text. For text files
// name becomes the set name; when empty the file name without extension is
// used.
//
// Text format:
//   - "Mitochondria = Powerhouse of the cell" (term and definition)
//   - blank lines and lines starting with '#' are ignored
//   - a line without '=' is kept as a term with no definition
func ReadBatchFile(filename, name string) ([]SetEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		sets, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		return sets, nil
	default:
		if name == "" {
			base := filepath.Base(filename)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		return []SetEntry{{Name: name, Cards: ParseText(string(content))}}, nil
	}
}

// ParseText parses the line-oriented text format.
func ParseText(content string) []CardEntry {
	var entries []CardEntry

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := CardEntry{Line: i + 1}
		if term, definition, ok := strings.Cut(line, "="); ok {
			entry.Term = strings.TrimSpace(term)
			entry.Definition = strings.TrimSpace(definition)
		} else {
			entry.Term = line
		}
		entries = append(entries, entry)
	}

	return entries
}

// ParseYAML parses either a single set mapping or a sequence of them.
func ParseYAML(content []byte) ([]SetEntry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	var sets []SetEntry
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&sets); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var set SetEntry
		if err := doc.Decode(&set); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	default:
		return nil, fmt.Errorf("line %d: expected a set or a list of sets", doc.Line)
	}

	return sets, nil
}
