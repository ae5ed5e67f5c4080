package namefix

import "fmt"

// ErrorKind distinguishes the two delimiter failure modes.
type ErrorKind int

const (
	UnmatchedOpening ErrorKind = iota
	UnmatchedClosing
)

// DelimiterError reports an unbalanced delimiter family in a name. It is the
// only failure mode the engine produces and always refers to the original,
// unmodified input: validation runs before any rewrite. The offending name is
// carried so callers can report it and continue with the next entry.
type DelimiterError struct {
	Kind  ErrorKind
	Delim byte
	Name  string
}

func (e *DelimiterError) Error() string {
	side := "opening"
	if e.Kind == UnmatchedClosing {
		side = "closing"
	}
	return fmt.Sprintf("unmatched %s %q in %q; handle manually", side, string(e.Delim), e.Name)
}
