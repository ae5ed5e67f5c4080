package namefix

// BracketRange is a matched opening/closing pair for one delimiter family,
// expressed as byte offsets into one specific string snapshot. Any rewrite of
// the string invalidates previously computed ranges; consumers must rescan.
type BracketRange struct {
	Start int
	End   int
}

// Contains reports whether the byte offset pos lies inside r, endpoints
// included.
func (r BracketRange) Contains(pos int) bool {
	return r.Start <= pos && pos <= r.End
}

// ScanBrackets walks s left to right maintaining a stack of opening offsets
// and returns the matched ranges for one delimiter family. An unmatched
// closing delimiter fails immediately, so the error always names the first
// structural problem; unmatched opening delimiters are reported after the
// scan. The two families never interact: scanning for '[' ']' ignores
// parentheses entirely.
//
// The delimiters are ASCII bytes, so byte offsets are safe even when s
// contains multi-byte runes between them.
func ScanBrackets(s string, open, close byte) ([]BracketRange, error) {
	var stack []int
	var ranges []BracketRange
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			stack = append(stack, i)
		case close:
			if len(stack) == 0 {
				return nil, &DelimiterError{Kind: UnmatchedClosing, Delim: close, Name: s}
			}
			ranges = append(ranges, BracketRange{Start: stack[len(stack)-1], End: i})
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return nil, &DelimiterError{Kind: UnmatchedOpening, Delim: open, Name: s}
	}
	return ranges, nil
}

// Validate runs the scanner over both delimiter families of the untouched
// name and returns the first failure. It must run before any rewrite: the
// downstream passes assume well-formed nesting and would silently produce
// wrong results on malformed input, so malformed input is rejected wholesale
// instead of repaired.
func Validate(name string) error {
	if _, err := ScanBrackets(name, '[', ']'); err != nil {
		return err
	}
	_, err := ScanBrackets(name, '(', ')')
	return err
}
