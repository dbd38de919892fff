package model

// FileErrorPolicy decides what happens when a file or directory cannot be
// enumerated or read.
type FileErrorPolicy string

const (
	// PolicySkip leaves the failing entry out and continues with the rest.
	PolicySkip FileErrorPolicy = "skip"
	// PolicyAbort stops the whole run on the first failure.
	PolicyAbort FileErrorPolicy = "abort"
)

// Valid reports whether p is a known policy.
func (p FileErrorPolicy) Valid() bool {
	return p == PolicySkip || p == PolicyAbort
}

// Syntax selects the regular expression engine.
type Syntax string

const (
	// SyntaxRE2 uses the standard library regexp package (RE2 syntax, linear time).
	SyntaxRE2 Syntax = "re2"
	// SyntaxPerl uses a backtracking engine supporting look-around and back-references.
	SyntaxPerl Syntax = "perl"
)

// Valid reports whether s is a known syntax.
func (s Syntax) Valid() bool {
	return s == SyntaxRE2 || s == SyntaxPerl
}
