package wildcard

import "testing"

func TestWildcard(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		match   bool
	}{
		{"*", "nums", true},
		{"n*", "nums", true},
		{"n*", "words", false},
		{"n?ms", "nums", true},
		{"n?ms", "nms", false},
		{"[nw]*s", "words", true},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
	}
	for _, c := range cases {
		p, err := CompilePattern(c.pattern)
		if err != nil {
			t.Errorf("compile %q failed: %v", c.pattern, err)
			continue
		}
		if p.IsMatch(c.s) != c.match {
			t.Errorf("pattern %q match %q, want %v", c.pattern, c.s, c.match)
		}
	}
}
