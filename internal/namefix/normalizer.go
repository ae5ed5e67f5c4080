package namefix

import (
	"regexp"
	"strings"
)

// Normalizer applies the ordered rewrite passes to one name at a time. It is
// immutable after construction apart from the optional Trace hook, and safe
// for concurrent use: each call works on its own string values.
type Normalizer struct {
	glyphs *strings.Replacer
	strip  []string

	reExactTag   *regexp.Regexp // (kw) with kw an exact keyword
	reKeyword    *regexp.Regexp // case-insensitive keyword containment
	reLeadingTag *regexp.Regexp // keyword-bearing [..] anchored at the start
	reVersion    *regexp.Regexp

	stages []stage

	// Trace, when set, is called after every pass that changed the string.
	// Used by the verbose batch driver; nil in normal operation.
	Trace func(stage, before, after string)
}

// stage is one ordered rewrite pass. The table order is part of the engine's
// contract: reordering passes changes output.
type stage struct {
	name string
	fn   func(string) string
}

// New compiles rules into a ready-to-use Normalizer. An empty keyword list
// disables the tagging, relocation, and version passes' keyword checks but
// keeps the structural passes active.
func New(rules Rules) *Normalizer {
	n := &Normalizer{strip: append([]string(nil), rules.StripLiterals...)}

	if len(rules.Glyphs) > 0 {
		pairs := make([]string, 0, len(rules.Glyphs)*2)
		for from, to := range rules.Glyphs {
			pairs = append(pairs, from, to)
		}
		n.glyphs = strings.NewReplacer(pairs...)
	}

	if len(rules.Keywords) > 0 {
		quoted := make([]string, len(rules.Keywords))
		for i, kw := range rules.Keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		alt := strings.Join(quoted, "|")
		n.reExactTag = regexp.MustCompile(`\((` + alt + `)\)`)
		n.reKeyword = regexp.MustCompile(`(?i)` + alt)
		n.reLeadingTag = regexp.MustCompile(`(?i)^(\[[^\[\]]*(?:` + alt + `)[^\[\]]*\])\s*`)
	}

	n.reVersion = regexp.MustCompile(`(?i)\b(v[2-4])\b`)

	n.stages = []stage{
		{"glyphs", n.normalizeGlyphs},
		{"strip-literals", n.stripLiterals},
		{"tag-keywords", n.tagKeywords},
		{"relocate-tag", n.relocateLeadingTag},
		{"wrap-versions", n.wrapVersions},
		{"spacing", n.normalizeSpacing},
	}
	return n
}

// Name normalizes one raw name. Validation runs first on the untouched
// input; on failure the name is rejected wholesale and no partial rewrite is
// observable. Given balanced input every pass is total, so the only possible
// error is a *DelimiterError.
func (n *Normalizer) Name(raw string) (string, error) {
	if err := Validate(raw); err != nil {
		return "", err
	}
	s := raw
	for _, st := range n.stages {
		before := s
		s = st.fn(s)
		if n.Trace != nil && s != before {
			n.Trace(st.name, before, s)
		}
	}
	return s, nil
}

// Filename normalizes the stem of a file name and reattaches the extension,
// trimmed of surrounding whitespace but otherwise unchanged. Hidden files
// (leading dot) are returned as-is. The extension is everything after the
// last dot; when it trims to nothing the dot is dropped.
func (n *Normalizer) Filename(raw string) (string, error) {
	if raw == "" || raw[0] == '.' {
		return raw, nil
	}
	stem, ext := raw, ""
	if i := strings.LastIndexByte(raw, '.'); i >= 0 {
		stem, ext = raw[:i], raw[i+1:]
	}
	fixed, err := n.Name(stem)
	if err != nil {
		return "", err
	}
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return fixed, nil
	}
	return fixed + "." + ext, nil
}
