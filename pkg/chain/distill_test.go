package chain

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		corpus []string
		want   []string
	}{
		{
			name:   "Lowercases and trims",
			corpus: []string{"  Apple", "BANANA  ", "cherry"},
			want:   []string{"apple", "banana", "cherry"},
		},
		{
			name:   "Drops empty and whitespace entries",
			corpus: []string{"", "   ", "\t", "kept"},
			want:   []string{"kept"},
		},
		{
			name:   "Empty corpus",
			corpus: nil,
			want:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize(tc.corpus)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("normalize() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDistillWindows(t *testing.T) {
	m, resolved := distill([]string{"Cat"}, 2)

	if resolved != 2 {
		t.Errorf("resolved depth = %d, want 2", resolved)
	}

	want := map[string]map[string]int{
		lengthsKey: {"3": 1},
		"":         {"ca": 1},
		"c":        {"at": 1},
		"ca":       {"t": 1},
	}
	if len(m.rows) != len(want) {
		t.Fatalf("got %d contexts, want %d", len(m.rows), len(want))
	}
	for ctx, counts := range want {
		row, ok := m.rows[ctx]
		if !ok {
			t.Fatalf("missing context %q", ctx)
		}
		if !reflect.DeepEqual(row.counts, counts) {
			t.Errorf("context %q counts = %v, want %v", ctx, row.counts, counts)
		}
	}
}

func TestDistillSkipsDegenerateWindows(t *testing.T) {
	// With depth 1, "aa" at i=1 yields from == to == "a"; the window must
	// be skipped, not recorded as a self-loop.
	m, _ := distill([]string{"aa"}, 1)

	if _, ok := m.rows["a"]; ok {
		t.Error(`degenerate window "a" -> "a" was recorded`)
	}
	row, ok := m.rows[""]
	if !ok {
		t.Fatal("empty bootstrap context missing")
	}
	if row.counts["a"] != 1 {
		t.Errorf(`empty context counts = %v, want {"a": 1}`, row.counts)
	}
}

func TestDistillEmptyCorpus(t *testing.T) {
	testCases := []struct {
		name   string
		corpus []string
	}{
		{name: "Nil corpus", corpus: nil},
		{name: "Only empty strings", corpus: []string{"", "   "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := distill(tc.corpus, 3)
			if len(m.rows) != 0 {
				t.Errorf("got %d contexts, want 0", len(m.rows))
			}
		})
	}
}

func TestDistillCountsAccumulate(t *testing.T) {
	// "aba" and "abc" share the windows "" -> "ab" and "a" -> "b...", so
	// frequencies must add up rather than overwrite.
	m, _ := distill([]string{"aba", "abc"}, 2)

	row := m.rows[""]
	if row == nil || row.counts["ab"] != 2 {
		t.Fatalf(`empty context counts = %+v, want {"ab": 2}`, row)
	}
	for ctx, r := range m.rows {
		for to, c := range r.counts {
			if c < 1 {
				t.Errorf("context %q outcome %q count = %d, want >= 1", ctx, to, c)
			}
		}
	}
}

func TestDistillResolvedDepth(t *testing.T) {
	_, resolved := distill([]string{"ab", "cd"}, 5)
	if resolved != 2 {
		t.Errorf("resolved depth = %d, want 2 (longest token)", resolved)
	}
}
