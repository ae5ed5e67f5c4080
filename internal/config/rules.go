package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/krelune/tidybatch/internal/namefix"
)

// LoadRules returns the built-in rule set, with any non-empty section of the
// YAML file at path replacing the corresponding built-in table wholesale.
// An empty path means built-ins only.
//
// File format:
//
//	keywords: ["汉化", "翻译"]
//	strip: ["(同人誌)"]
//	glyphs: {"【": "[", "】": "]"}
func LoadRules(path string) (namefix.Rules, error) {
	rules := namefix.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return namefix.Rules{}, fmt.Errorf("rules file: %w", err)
	}

	var override namefix.Rules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return namefix.Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}

	if len(override.Keywords) > 0 {
		rules.Keywords = override.Keywords
	}
	if len(override.StripLiterals) > 0 {
		rules.StripLiterals = override.StripLiterals
	}
	if len(override.Glyphs) > 0 {
		rules.Glyphs = override.Glyphs
	}
	return rules, nil
}
