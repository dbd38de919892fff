package domain

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
	m "github.com/mouse-blink/gorep/internal/model"
)

// Matcher tests single lines against a compiled pattern.
type Matcher interface {
	// Matches reports whether the pattern matches any substring of line.
	Matches(line string) bool
	String() string
}

// CompilePattern compiles expr once for the whole run using the engine
// selected by syntax. An empty syntax selects RE2.
func CompilePattern(expr string, syntax m.Syntax) (Matcher, error) {
	if expr == "" {
		return nil, ErrEmptyPattern
	}

	switch syntax {
	case m.SyntaxRE2, "":
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
		}

		return &re2Matcher{re: re}, nil
	case m.SyntaxPerl:
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
		}

		return &perlMatcher{re: re}, nil
	default:
		return nil, fmt.Errorf("%w: unknown syntax %q", ErrInvalidPattern, syntax)
	}
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (r *re2Matcher) Matches(line string) bool {
	return r.re.MatchString(line)
}

func (r *re2Matcher) String() string {
	return r.re.String()
}

type perlMatcher struct {
	re *regexp2.Regexp
}

// Matches returns false on engine errors; those only occur when a match
// timeout is configured, which this matcher never does.
func (p *perlMatcher) Matches(line string) bool {
	ok, err := p.re.MatchString(line)
	if err != nil {
		return false
	}

	return ok
}

func (p *perlMatcher) String() string {
	return p.re.String()
}
