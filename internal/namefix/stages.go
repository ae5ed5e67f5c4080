package namefix

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Spacing insertion around the canonical bracket glyphs. Runs of whitespace
// introduced here are collapsed afterwards.
var spacingReplacer = strings.NewReplacer("[", " [", "]", "] ", "(", " (", ")", ") ")

// reSpaceRuns collapses any run of whitespace and underscores. \p{Zs} covers
// the fullwidth space that CJK names commonly carry.
var reSpaceRuns = regexp.MustCompile(`[\s\p{Zs}_]+`)

// normalizeGlyphs transliterates alternate bracket glyphs to their canonical
// ASCII forms. Per-character and one-to-one, so no depth awareness is needed.
func (n *Normalizer) normalizeGlyphs(s string) string {
	if n.glyphs == nil {
		return s
	}
	return n.glyphs.Replace(s)
}

// stripLiterals removes every non-overlapping occurrence of the configured
// literal markers, left to right.
func (n *Normalizer) stripLiterals(s string) string {
	for _, lit := range n.strip {
		s = strings.ReplaceAll(s, lit, "")
	}
	return s
}

// tagKeywords converts parenthesized keywords into bracketed ones. Exact
// (kw) occurrences are rewritten anywhere in the string; additionally, a
// parenthetical at the very start whose content merely contains a keyword is
// converted whole, extra text included. The exact-match rule runs first, so
// a bare leading (kw) is already handled by the time the containment rule
// looks at the string.
func (n *Normalizer) tagKeywords(s string) string {
	if n.reExactTag == nil {
		return s
	}
	s = n.reExactTag.ReplaceAllString(s, "[$1]")
	if strings.HasPrefix(s, "(") {
		if i := strings.IndexByte(s, ')'); i >= 0 && n.reKeyword.MatchString(s[:i]) {
			s = "[" + s[1:i] + "]" + s[i+1:]
		}
	}
	return s
}

// relocateLeadingTag moves a keyword-bearing bracketed span anchored at the
// start of the name to its end, joined by a single space. Metadata tags read
// better as trailing annotations. The pattern is anchored at offset zero, so
// at most one span relocates per pass.
func (n *Normalizer) relocateLeadingTag(s string) string {
	if n.reLeadingTag == nil {
		return s
	}
	loc := n.reLeadingTag.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	tag := s[loc[2]:loc[3]]
	rest := strings.TrimSpace(s[loc[1]:])
	return rest + " " + tag
}

// wrapVersions brackets every bare word-bounded v2/v3/v4 token that is not
// already inside a []-extent. The extent scan must be fresh: earlier passes
// rewrote the string, so ranges computed from any previous snapshot are
// stale. Replacements are collected against this one snapshot and applied
// rightmost first, so inserting the bracket characters for one match never
// shifts the offsets still to be applied.
func (n *Normalizer) wrapVersions(s string) string {
	matches := n.reVersion.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	ranges, err := ScanBrackets(s, '[', ']')
	if err != nil {
		// Unreachable for pipeline input: validation gated the raw name and
		// no earlier pass introduces an unmatched bracket.
		return s
	}

	type edit struct {
		start, end int
		text       string
	}
	var edits []edit
	for _, m := range matches {
		if inWordRun(s, m[2], m[3]) {
			continue
		}
		enclosed := false
		for _, r := range ranges {
			if r.Contains(m[0]) {
				enclosed = true
				break
			}
		}
		if !enclosed {
			edits = append(edits, edit{m[2], m[3], "[" + s[m[2]:m[3]] + "]"})
		}
	}
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		s = s[:e.start] + e.text + s[e.end:]
	}
	return s
}

// inWordRun reports whether the token at s[start:end] touches a letter or
// digit. The regexp's \b only knows ASCII word characters, so a version
// token abutting CJK text still matches; such a token is part of a larger
// word and must not be wrapped.
func inWordRun(s string, start, end int) bool {
	if r, size := utf8.DecodeLastRuneInString(s[:start]); size > 0 &&
		(unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return true
	}
	if r, size := utf8.DecodeRuneInString(s[end:]); size > 0 &&
		(unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return true
	}
	return false
}

// normalizeSpacing is the final cosmetic pass: underscores to spaces, one
// space before every opening and after every closing glyph, whitespace runs
// collapsed and trimmed, and the ") ]" artifact the insertion step leaves
// behind squeezed back to ")]".
func (n *Normalizer) normalizeSpacing(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = spacingReplacer.Replace(s)
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, ") ]", ")]")
}
