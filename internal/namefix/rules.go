package namefix

// Rules is the rewrite configuration: the marker tokens recognized for
// re-tagging and relocation, the literal substrings removed outright, and the
// fullwidth-to-ASCII glyph table. It is plain data so alternate sets can be
// supplied by a config file or by tests; [DefaultRules] carries the
// production values.
type Rules struct {
	// Keywords are the metadata marker tokens (translator credits, source
	// sites, revision markers). Matched exactly for (kw) → [kw] conversion
	// and by case-insensitive containment for the leading-parenthetical and
	// relocation checks.
	Keywords []string `yaml:"keywords"`

	// StripLiterals are removed wherever they occur, before any tagging.
	StripLiterals []string `yaml:"strip"`

	// Glyphs maps alternate bracket glyphs to their canonical ASCII forms.
	// One-to-one; application order does not matter.
	Glyphs map[string]string `yaml:"glyphs"`
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		Keywords: []string{
			"汉化", "翻译", "漢化", "翻譯", "渣翻", "机翻",
			"个人", "個人", "死兆修会", "機翻", "重嵌", "Pixiv",
			"無修正", "中文", "繁体", "想舔羽月的jio组", "换源", "換源",
		},
		StripLiterals: []string{"(同人誌)"},
		Glyphs: map[string]string{
			"【": "[", "［": "[",
			"】": "]", "］": "]",
			"（": "(", "）": ")",
		},
	}
}
