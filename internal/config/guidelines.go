package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/pr-verdict/internal/core"
)

var (
	ErrGuidelinesParsing = errors.New("guidelines parsing failed")
	ErrNoGuidelines      = errors.New("guidelines file lists no guidelines")
)

// LoadGuidelines reads the review guidelines from a YAML file of the form
//
//	guidelines:
//	  - Keep pull requests small.
//
// An empty path returns the built-in guidelines.
func LoadGuidelines(path string) (*core.ReviewGuidelines, error) {
	if path == "" {
		return core.DefaultReviewGuidelines(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guidelines file %s: %w", path, err)
	}

	guidelines := &core.ReviewGuidelines{}
	if err := yaml.Unmarshal(data, guidelines); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGuidelinesParsing, err)
	}
	if len(guidelines.Guidelines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGuidelines)
	}
	return guidelines, nil
}
