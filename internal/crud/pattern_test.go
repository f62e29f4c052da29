package crud

import "testing"

func TestSniffRegex(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"get_thing", false},
		{"getthing", false},
		{"create_*", true}, // * is a regex metacharacter to the sniffer
		{"get_?", true},    // so is ?
		{`^get_[^_]+$`, true},
		{`r"^get_[^_]+$"`, true},
		{"r'plain'", true},
		{`foo\bar`, true},
		{"a|b", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := sniffRegex(tt.pattern); got != tt.want {
			t.Errorf("sniffRegex(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestStripRawQuoting(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`r"^get_[^_]+$"`, `^get_[^_]+$`},
		{"r'abc'", "abc"},
		{"^get_[^_]+$", "^get_[^_]+$"},
		{"plain", "plain"},
		{`r"`, `r"`}, // too short to be a quoted pattern
	}
	for _, tt := range tests {
		if got := stripRawQuoting(tt.in); got != tt.want {
			t.Errorf("stripRawQuoting(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompilePattern_Kinds(t *testing.T) {
	tests := []struct {
		pattern string
		want    Kind
	}{
		{"get_thing", KindGlob}, // no metacharacters: glob
		{"create_*", KindRegex}, // wildcard sniffs as regex and compiles fine
		{`^get_[^_]+$`, KindRegex},
		{`r"^get_[^_]+$"`, KindRegex},
		{"[unclosed", KindLiteral}, // invalid as regex AND as glob
	}
	for _, tt := range tests {
		p := compilePattern(tt.pattern)
		if p.kind != tt.want {
			t.Errorf("compilePattern(%q).kind = %s, want %s", tt.pattern, p.kind, tt.want)
		}
	}
}

func TestCompilePattern_RegexStartAnchor(t *testing.T) {
	// re.match semantics: anchored at the start, open at the end.
	p := compilePattern("get_*")
	if p.kind != KindRegex {
		t.Fatalf("expected regex kind, got %s", p.kind)
	}
	if !p.matches("get_things_generator") {
		t.Error("prefix match should succeed without an end anchor")
	}
	if !p.matches("getaway") {
		t.Error(`"get_*" as a regex means get + zero or more underscores; getaway matches`)
	}
	if p.matches("forget_things") {
		t.Error("match must be anchored at position 0")
	}
}

func TestCompilePattern_ExplicitAnchors(t *testing.T) {
	p := compilePattern(`^get_[^_]+$`)
	if !p.matches("get_thing") {
		t.Error("expected get_thing to match")
	}
	if p.matches("get_things_generator") {
		t.Error("end anchor must exclude multi-underscore names")
	}
}

func TestCompilePattern_GlobWholeString(t *testing.T) {
	p := compilePattern("get_thing")
	if p.kind != KindGlob {
		t.Fatalf("expected glob kind, got %s", p.kind)
	}
	if !p.matches("get_thing") {
		t.Error("expected exact match")
	}
	if p.matches("get_things") {
		t.Error("glob without wildcards compares the whole string")
	}
	if p.matches("Get_thing") {
		t.Error("glob matching is case-sensitive")
	}
}

func TestCompilePattern_DegradesWithoutError(t *testing.T) {
	// Sniffed as regex (contains [), fails to compile as regex and as glob,
	// ends up as literal equality. Must never panic or error.
	p := compilePattern("[unclosed")
	if !p.matches("[unclosed") {
		t.Error("literal fallback should match the pattern text exactly")
	}
	if p.matches("unclosed") {
		t.Error("literal fallback must not match other names")
	}
	info := p.info()
	if !info.Degraded {
		t.Error("expected Degraded=true for a regex that failed to compile")
	}
}

func TestPatternInfo_NotDegraded(t *testing.T) {
	for _, raw := range []string{"get_thing", "create_*", `^update_[^_]+$`} {
		if info := compilePattern(raw).info(); info.Degraded {
			t.Errorf("pattern %q should not be flagged as degraded", raw)
		}
	}
}
