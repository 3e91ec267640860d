package drift

import (
	"testing"

	"github.com/vango-dev/termkit/internal/fingerprint"
)

var (
	fpA = fingerprint.OfString("a")
	fpB = fingerprint.OfString("b")
	fpC = fingerprint.OfString("c")
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		local    fingerprint.Fingerprint
		baseline fingerprint.Fingerprint
		upstream fingerprint.Fingerprint
		want     State
	}{
		{"local absent", "", fpA, fpA, MissingLocally},
		{"local absent upstream moved", "", fpA, fpB, MissingLocally},
		{"all equal", fpA, fpA, fpA, Unchanged},
		{"upstream moved", fpA, fpA, fpB, UpstreamUpdated},
		{"local moved", fpB, fpA, fpA, LocallyModified},
		{"both moved apart", fpB, fpA, fpC, Conflict},
		{"both moved to same content", fpB, fpA, fpB, Unchanged},
		{"no baseline, local absent", "", "", fpA, MissingLocally},
		{"no baseline, matches upstream", fpA, "", fpA, Unchanged},
		{"no baseline, differs from upstream", fpB, "", fpA, UpstreamUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.local, tt.baseline, tt.upstream); got != tt.want {
				t.Errorf("Classify(%q, %q, %q) = %q, want %q",
					tt.local, tt.baseline, tt.upstream, got, tt.want)
			}
		})
	}
}

// The converged case is the one branch that is easy to get wrong: both sides
// moved, but to identical content, so nothing needs updating.
func TestClassify_ConvergedEdit(t *testing.T) {
	baseline := fingerprint.OfString("v1")
	edited := fingerprint.OfString("v2")

	if got := Classify(edited, baseline, edited); got != Unchanged {
		t.Errorf("converged edit = %q, want %q", got, Unchanged)
	}
	if Classify(edited, baseline, edited).Changed() {
		t.Error("converged edit should not count as a local change")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	fps := []fingerprint.Fingerprint{"", fpA, fpB, fpC}
	for _, local := range fps {
		for _, baseline := range fps {
			for _, upstream := range fps[1:] {
				first := Classify(local, baseline, upstream)
				for i := 0; i < 3; i++ {
					if got := Classify(local, baseline, upstream); got != first {
						t.Fatalf("Classify(%q, %q, %q) not stable: %q then %q",
							local, baseline, upstream, first, got)
					}
				}
			}
		}
	}
}

func TestClassify_Total(t *testing.T) {
	valid := make(map[State]bool)
	for _, s := range States {
		valid[s] = true
	}

	fps := []fingerprint.Fingerprint{"", fpA, fpB, fpC}
	for _, local := range fps {
		for _, baseline := range fps {
			for _, upstream := range fps[1:] {
				got := Classify(local, baseline, upstream)
				if !valid[got] {
					t.Errorf("Classify(%q, %q, %q) = %q, not a known state", local, baseline, upstream, got)
				}
				if got == LocalOnly {
					t.Errorf("Classify must never return %q", LocalOnly)
				}
			}
		}
	}
}

func TestState_Changed(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Unchanged, false},
		{UpstreamUpdated, false},
		{LocallyModified, true},
		{Conflict, true},
		{MissingLocally, false},
		{LocalOnly, false},
	}

	for _, tt := range tests {
		if got := tt.state.Changed(); got != tt.want {
			t.Errorf("%s.Changed() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
