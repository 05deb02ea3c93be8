package country

import "testing"

func TestInfer_InternationalFriendly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		home, away  string
		competition string
		want        string
	}{
		{"cross-border friendly", "Brazil U23", "Argentina U23", "International Friendly", "International"},
		{"only home side recognized", "Brazil U23", "Mystery FC", "International Friendly", "Brazil"},
		{"only away side recognized", "Mystery FC", "Japan", "International Friendly", "Japan"},
		{"same country both sides", "Tokyo Verdy", "Yokohama FC", "International Friendly", "Japan"},
		{"friendly without indicators", "Alpha", "Beta", "International Friendly", "Unknown"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Infer(tc.home, tc.away, tc.competition); got != tc.want {
				t.Fatalf("Infer(%q, %q, %q): got=%q want=%q", tc.home, tc.away, tc.competition, got, tc.want)
			}
		})
	}
}

func TestInfer_ClubIndicators(t *testing.T) {
	t.Parallel()

	if got := Infer("Manchester City", "Brighton", "Premier League"); got != "England" {
		t.Fatalf("got=%q want=England", got)
	}
	if got := Infer("CSKA", "Zenit", "Cup"); got != "Russia" {
		t.Fatalf("got=%q want=Russia", got)
	}
	if got := Infer("Sparta Praha", "Slavia", "Fortuna Liga"); got != "Czech Republic" {
		t.Fatalf("got=%q want=Czech Republic", got)
	}
	if got := Infer("Alpha", "Beta", "Some League"); got != "Unknown" {
		t.Fatalf("got=%q want=Unknown", got)
	}
}

func TestInfer_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Infer("FLAMENGO", "corinthians", "serie a"); got != "Brazil" {
		t.Fatalf("got=%q want=Brazil", got)
	}
}
