package regulatory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk catalogue shape.
type catalogFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadFile reads a YAML catalogue from disk. Records without an id, title, or
// snippet are rejected so a bad catalogue fails at startup rather than
// producing silent gaps at evaluation time.
func LoadFile(path string) ([]Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue file: %w", err)
	}
	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("catalogue file %s contains no sources", path)
	}

	seen := make(map[string]struct{}, len(file.Sources))
	for i, s := range file.Sources {
		if s.ID == "" {
			return nil, fmt.Errorf("catalogue source %d has no id", i)
		}
		if s.Title == "" || s.Snippet == "" {
			return nil, fmt.Errorf("catalogue source %q needs a title and snippet", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("catalogue source id %q is duplicated", s.ID)
		}
		seen[s.ID] = struct{}{}
		switch s.Severity {
		case SeverityBlock, SeverityReview, SeverityInfo:
		case "":
			file.Sources[i].Severity = SeverityInfo
		default:
			return nil, fmt.Errorf("catalogue source %q has unknown severity %q", s.ID, s.Severity)
		}
	}

	return file.Sources, nil
}
