package seed

import "testing"

func TestNormalizeUsageKeyFoldsLatinOnly(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Python", "python"},
		{"python", "python"},
		{"  SQL  ", "sql"},
		{"Data Analyst", "data analyst"},
		{"برمجة", "برمجة"},
		{"C++", "C++"}, // non-alnum, keyed as-is
	}
	for _, tc := range cases {
		if got := normalizeUsageKey(tc.in); got != tc.want {
			t.Errorf("normalizeUsageKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTallyUsageDedupsByNormalizedKey(t *testing.T) {
	counters := tallyUsage([]string{"Python", "python", "Go"})
	if len(counters) != 2 {
		t.Fatalf("expected 2 counters, got %d: %+v", len(counters), counters)
	}
	if counters[0].Name != "Python" || counters[0].Count != 2 {
		t.Errorf("expected first-seen casing Python with count 2, got %+v", counters[0])
	}
	if counters[1].Name != "Go" || counters[1].Count != 1 {
		t.Errorf("expected Go with count 1, got %+v", counters[1])
	}
}

func TestTallyUsageKeepsNonLatinDistinct(t *testing.T) {
	counters := tallyUsage([]string{"برمجة", "البرمجة"})
	if len(counters) != 2 {
		t.Fatalf("expected distinct counters for distinct non-Latin strings, got %+v", counters)
	}
}

func TestTallyUsageSkipsBlankValues(t *testing.T) {
	counters := tallyUsage([]string{"", "  ", "Go"})
	if len(counters) != 1 || counters[0].Name != "Go" {
		t.Fatalf("expected only Go, got %+v", counters)
	}
}
