package payload

import "testing"

func TestFirstResult_EnvelopeVariants(t *testing.T) {
	t.Parallel()

	entry := map[string]any{"id": "m1"}

	cases := []struct {
		name     string
		envelope any
		wantID   string
	}{
		{"results list", map[string]any{"results": []any{entry}}, "m1"},
		{"result list", map[string]any{"result": []any{entry}}, "m1"},
		{"results preferred over result", map[string]any{
			"results": []any{map[string]any{"id": "primary"}},
			"result":  []any{map[string]any{"id": "secondary"}},
		}, "primary"},
		{"missing key", map[string]any{"code": float64(0)}, ""},
		{"empty list", map[string]any{"results": []any{}}, ""},
		{"non-list value", map[string]any{"results": "oops"}, ""},
		{"non-dict entry", map[string]any{"results": []any{"oops"}}, ""},
		{"nil envelope", nil, ""},
		{"scalar envelope", 42, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FirstResult(tc.envelope)
			if got == nil {
				t.Fatal("FirstResult returned nil, want empty object")
			}
			if String(got["id"]) != tc.wantID {
				t.Fatalf("id: got=%q want=%q", String(got["id"]), tc.wantID)
			}
		})
	}
}

func TestStatusID_FallsBackToScoreArray(t *testing.T) {
	t.Parallel()

	if id, ok := StatusID(Object{"status_id": float64(4)}); !ok || id != 4 {
		t.Fatalf("direct field: got=%d ok=%v", id, ok)
	}

	match := Object{"score": []any{"m1", float64(2), []any{}, []any{}}}
	if id, ok := StatusID(match); !ok || id != 2 {
		t.Fatalf("score fallback: got=%d ok=%v", id, ok)
	}

	if _, ok := StatusID(Object{"score": []any{"m1"}}); ok {
		t.Fatal("short score array should not produce a status")
	}
	if _, ok := StatusID(Object{}); ok {
		t.Fatal("empty match should not produce a status")
	}
	if _, ok := StatusID(nil); ok {
		t.Fatal("nil match should not produce a status")
	}
}

func TestLookupFirst(t *testing.T) {
	t.Parallel()

	table := map[string]any{
		"77": map[string]any{"results": []any{map[string]any{"name": "Arsenal"}}},
	}

	if got := LookupFirst(table, float64(77)); String(got["name"]) != "Arsenal" {
		t.Fatalf("numeric id lookup failed: %v", got)
	}
	if got := LookupFirst(table, "absent"); len(got) != 0 {
		t.Fatalf("missing id should yield empty object, got %v", got)
	}
	if got := LookupFirst(table, nil); len(got) != 0 {
		t.Fatalf("nil id should yield empty object, got %v", got)
	}
}

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     any
		want   int
		wantOK bool
	}{
		{"4", 4, true},
		{"45+2", 45, true},
		{"6'", 6, true},
		{float64(12), 12, true},
		{"HT", 0, false},
		{"", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := LeadingInt(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("LeadingInt(%v): got=(%d,%v) want=(%d,%v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNumberUnit(t *testing.T) {
	t.Parallel()

	value, unit, ok := NumberUnit("12.5 m/s")
	if !ok || value != 12.5 || unit != "m/s" {
		t.Fatalf("got value=%v unit=%q ok=%v", value, unit, ok)
	}

	value, unit, ok = NumberUnit("-3°C")
	if !ok || value != -3 || unit != "°C" {
		t.Fatalf("got value=%v unit=%q ok=%v", value, unit, ok)
	}

	if _, _, ok := NumberUnit("breezy"); ok {
		t.Fatal("non-numeric reading should not parse")
	}
	if _, _, ok := NumberUnit(nil); ok {
		t.Fatal("nil reading should not parse")
	}

	value, unit, ok = NumberUnit(float64(7))
	if !ok || value != 7 || unit != "" {
		t.Fatalf("bare number: got value=%v unit=%q ok=%v", value, unit, ok)
	}
}
