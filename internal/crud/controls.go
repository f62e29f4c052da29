// Package crud classifies member names into CRUD buckets using configurable
// regex and glob pattern rule sets. Classification never fails: malformed
// patterns silently degrade to weaker match modes and a disabled bucket
// rejects every name.
package crud

// Bucket is one of the four CRUD classification categories.
type Bucket string

const (
	BucketCreate Bucket = "create"
	BucketRead   Bucket = "read"
	BucketUpdate Bucket = "update"
	BucketDelete Bucket = "delete"
)

// Buckets lists all buckets in classification order. The order is observable:
// the operation builder keeps the first bucket that approves a name.
var Buckets = [4]Bucket{BucketCreate, BucketRead, BucketUpdate, BucketDelete}

// RuleSet is the enable flag plus the ordered pattern list governing one bucket.
type RuleSet struct {
	Enabled  bool
	Patterns []string
}

// DefaultRuleSet returns the built-in rule set for a bucket: only read is
// enabled, and each list carries a name-prefix regex plus a glob spelling of
// the same convention. Callers receive a fresh copy and may mutate it freely.
func DefaultRuleSet(b Bucket) RuleSet {
	switch b {
	case BucketCreate:
		return RuleSet{Enabled: false, Patterns: []string{`^create_[^_]+$`, "create_*"}}
	case BucketRead:
		return RuleSet{Enabled: true, Patterns: []string{`^get_[^_]+$`, "get_*"}}
	case BucketUpdate:
		return RuleSet{Enabled: false, Patterns: []string{`^update_[^_]+$`, "update_*"}}
	case BucketDelete:
		return RuleSet{Enabled: false, Patterns: []string{`^delete_[^_]+$`, "delete_*"}}
	default:
		return RuleSet{}
	}
}

// Controls holds the four rule sets and answers approval queries against
// them. The compiled matchers are a derived cache: they are built lazily on
// the first query and rebuilt whenever a rule set changes, so recompiling at
// any point yields identical behavior.
//
// Controls is not safe for concurrent mutation; classification runs on a
// single goroutine during wrapper construction.
type Controls struct {
	rules    map[Bucket]RuleSet
	compiled map[Bucket][]pattern
}

// DefaultControls returns Controls populated with DefaultRuleSet for every
// bucket.
func DefaultControls() *Controls {
	c := &Controls{rules: make(map[Bucket]RuleSet, len(Buckets))}
	for _, b := range Buckets {
		c.rules[b] = DefaultRuleSet(b)
	}
	return c
}

// RuleSet returns a copy of the rule set for b.
func (c *Controls) RuleSet(b Bucket) RuleSet {
	rs := c.rules[b]
	out := RuleSet{Enabled: rs.Enabled}
	out.Patterns = append(out.Patterns, rs.Patterns...)
	return out
}

// SetRuleSet replaces the rule set for b and invalidates the compiled cache.
func (c *Controls) SetRuleSet(b Bucket, rs RuleSet) {
	stored := RuleSet{Enabled: rs.Enabled}
	stored.Patterns = append(stored.Patterns, rs.Patterns...)
	c.rules[b] = stored
	c.compiled = nil
}

// SetEnabled flips the enable flag for b without touching its patterns.
func (c *Controls) SetEnabled(b Bucket, enabled bool) {
	rs := c.rules[b]
	rs.Enabled = enabled
	c.rules[b] = rs
	c.compiled = nil
}

// SetPatterns replaces the pattern list for b without touching its flag.
func (c *Controls) SetPatterns(b Bucket, patterns []string) {
	rs := c.rules[b]
	rs.Patterns = append([]string(nil), patterns...)
	c.rules[b] = rs
	c.compiled = nil
}

// Compile rebuilds the matcher cache from the current rule sets. It is
// idempotent and never fails; individual entries degrade per compilePattern.
// Approved calls it automatically when the cache is absent.
func (c *Controls) Compile() {
	compiled := make(map[Bucket][]pattern, len(Buckets))
	for _, b := range Buckets {
		rs := c.rules[b]
		ps := make([]pattern, 0, len(rs.Patterns))
		for _, raw := range rs.Patterns {
			ps = append(ps, compilePattern(raw))
		}
		compiled[b] = ps
	}
	c.compiled = compiled
}

// Approved reports whether name is approved under bucket b: the bucket must
// be enabled and at least one of its patterns must match in its compiled
// match mode.
func (c *Controls) Approved(name string, b Bucket) bool {
	if c.compiled == nil {
		c.Compile()
	}
	if !c.rules[b].Enabled {
		return false
	}
	for _, p := range c.compiled[b] {
		if p.matches(name) {
			return true
		}
	}
	return false
}

// ApprovedAny returns the first bucket (in Buckets order) that approves
// name, or false when every bucket rejects it.
func (c *Controls) ApprovedAny(name string) (Bucket, bool) {
	for _, b := range Buckets {
		if c.Approved(name, b) {
			return b, true
		}
	}
	return "", false
}

// Inspect returns the compiled view of bucket b's patterns.
func (c *Controls) Inspect(b Bucket) []PatternInfo {
	if c.compiled == nil {
		c.Compile()
	}
	infos := make([]PatternInfo, 0, len(c.compiled[b]))
	for _, p := range c.compiled[b] {
		infos = append(infos, p.info())
	}
	return infos
}
