package crud

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// Kind is the match mode a pattern ends up compiled as.
type Kind int

const (
	// KindRegex matches with implicit start-anchor semantics (the pattern
	// must match at position 0; no implicit end anchor).
	KindRegex Kind = iota
	// KindGlob matches the whole name with shell wildcards (*, ?, [...]).
	KindGlob
	// KindLiteral matches by exact string equality. Only reached when a
	// pattern failed to compile as both regex and glob.
	KindLiteral
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindRegex:
		return "regex"
	case KindGlob:
		return "glob"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// regexMetaChars triggers regex sniffing. A pattern containing any of these
// is treated as a regex, which deliberately captures bare glob wildcards
// like "create_*" as well (they compile as valid regexes with a different
// meaning, matching the behavior callers already rely on).
const regexMetaChars = `.^$*+?{}[]|\()`

// pattern is one compiled rule-set entry. Compilation never fails: a regex
// that does not compile degrades to a glob, and a glob that does not compile
// degrades to literal equality.
type pattern struct {
	raw  string // original entry as written in the rule set
	text string // entry with any r"…"/r'…' quoting stripped
	kind Kind

	re *regexp.Regexp // set when kind == KindRegex
	g  glob.Glob      // set when kind == KindGlob
}

// sniffRegex reports whether raw should be tried as a regex: either it is
// wrapped in r"…"/r'…' quoting, or it contains a regex metacharacter.
func sniffRegex(raw string) bool {
	return strings.HasPrefix(raw, `r"`) || strings.HasPrefix(raw, "r'") ||
		strings.ContainsAny(raw, regexMetaChars)
}

// stripRawQuoting removes the r"…"/r'…' wrapper when present.
func stripRawQuoting(raw string) string {
	if (strings.HasPrefix(raw, `r"`) && strings.HasSuffix(raw, `"`) && len(raw) > 3) ||
		(strings.HasPrefix(raw, "r'") && strings.HasSuffix(raw, "'") && len(raw) > 3) {
		return raw[2 : len(raw)-1]
	}
	return raw
}

// compilePattern turns one rule-set entry into a matcher.
func compilePattern(raw string) pattern {
	p := pattern{raw: raw, text: stripRawQuoting(raw)}

	if sniffRegex(raw) {
		// \A(?:…) reproduces match-at-start semantics without forcing an
		// end anchor the pattern did not ask for.
		re, err := regexp.Compile(`\A(?:` + p.text + `)`)
		if err == nil {
			p.kind = KindRegex
			p.re = re
			return p
		}
		slog.Debug("pattern is not a valid regex, degrading to glob",
			"pattern", raw, "error", err)
	}

	if g, err := glob.Compile(p.text); err == nil {
		p.kind = KindGlob
		p.g = g
		return p
	}

	p.kind = KindLiteral
	return p
}

// matches reports whether name is approved by this pattern.
func (p pattern) matches(name string) bool {
	switch p.kind {
	case KindRegex:
		return p.re.MatchString(name)
	case KindGlob:
		return p.g.Match(name)
	default:
		return name == p.text
	}
}

// PatternInfo describes one rule-set entry after compilation. Used by the
// CLI to explain how a configured pattern will actually behave.
type PatternInfo struct {
	Raw  string
	Kind Kind
	// Degraded is true when the entry was sniffed as a regex but failed to
	// compile and fell back to glob or literal matching.
	Degraded bool
}

func (p pattern) info() PatternInfo {
	return PatternInfo{
		Raw:      p.raw,
		Kind:     p.kind,
		Degraded: p.kind != KindRegex && sniffRegex(p.raw),
	}
}
