package buffer

import "testing"

func TestGate_TryAccept(t *testing.T) {
	lines := func(n int) []string { return make([]string, n) }

	cases := []struct {
		name    string
		gate    Gate
		current int
		cand    int
		want    bool
	}{
		{"unlimited", Gate{}, 1, 100, true},
		{"under cap", Gate{MaxLines: 3}, 1, 3, true},
		{"grow past cap", Gate{MaxLines: 3}, 3, 4, false},
		{"shrink while over cap", Gate{MaxLines: 3}, 6, 5, true},
		{"same count while over cap", Gate{MaxLines: 3}, 5, 5, true},
		{"grow while over cap", Gate{MaxLines: 3}, 5, 6, false},
	}
	for _, tc := range cases {
		if got := tc.gate.TryAccept(tc.current, lines(tc.cand)); got != tc.want {
			t.Fatalf("%s: TryAccept=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGate_VetoRunsFirst(t *testing.T) {
	calls := 0
	g := Gate{
		MaxLines: 10,
		Veto: func(candidate []string) bool {
			calls++
			return len(candidate) == 0 || candidate[0] != "no"
		},
	}
	if g.TryAccept(1, []string{"no"}) {
		t.Fatalf("expected veto to reject")
	}
	if got := g.check(1, []string{"no"}); got != GateVetoed {
		t.Fatalf("reason=%v, want %v", got, GateVetoed)
	}
	if !g.TryAccept(1, []string{"yes"}) {
		t.Fatalf("expected accept")
	}
	if calls != 3 {
		t.Fatalf("veto calls=%d, want 3", calls)
	}
}
