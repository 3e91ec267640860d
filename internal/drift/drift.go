// Package drift classifies vendored files against their installed baseline.
//
// Classification compares three fingerprints: the local copy, the baseline
// recorded in the ledger when the file was last installed, and the current
// upstream copy. Comparing against the baseline, rather than local against
// upstream directly, separates "upstream moved and the file was not touched"
// from "the file was edited".
package drift

import "github.com/vango-dev/termkit/internal/fingerprint"

// State is the drift classification of one file.
type State string

const (
	// Unchanged means local content matches upstream.
	Unchanged State = "unchanged"

	// UpstreamUpdated means upstream changed and the local copy was not edited.
	// Overwriting is safe.
	UpstreamUpdated State = "upstream-updated"

	// LocallyModified means the local copy was edited and upstream did not move.
	// Overwriting would destroy the edits.
	LocallyModified State = "locally-modified"

	// Conflict means both the local copy and upstream diverged from the baseline.
	Conflict State = "conflict"

	// MissingLocally means upstream declares the file but it is not on disk.
	MissingLocally State = "missing-locally"

	// LocalOnly means the file is on disk but upstream does not declare it.
	// It is assigned by directory scans, never by Classify.
	LocalOnly State = "local-only"
)

// States lists every state in report order.
var States = []State{
	Unchanged,
	UpstreamUpdated,
	LocallyModified,
	Conflict,
	MissingLocally,
	LocalOnly,
}

// Changed reports whether s carries local edits that an update would overwrite.
func (s State) Changed() bool {
	return s == LocallyModified || s == Conflict
}

func (s State) String() string {
	return string(s)
}

// Classify returns the drift state of one file. A zero fingerprint means
// absent. upstream is always present; baseline is absent when the file was
// added upstream after the last install.
//
// Rules, first match wins:
//
//	local absent                                  missing-locally
//	local == baseline == upstream                 unchanged
//	local == baseline, upstream moved             upstream-updated
//	local moved, upstream == baseline             locally-modified
//	both moved, local != upstream                 conflict
//	both moved, local == upstream                 unchanged
func Classify(local, baseline, upstream fingerprint.Fingerprint) State {
	if local.IsZero() {
		return MissingLocally
	}

	if baseline.IsZero() {
		// Nothing recorded to compare edits against.
		if local == upstream {
			return Unchanged
		}
		return UpstreamUpdated
	}

	localMoved := local != baseline
	upstreamMoved := upstream != baseline

	switch {
	case !localMoved && !upstreamMoved:
		return Unchanged
	case !localMoved:
		return UpstreamUpdated
	case !upstreamMoved:
		return LocallyModified
	case local != upstream:
		return Conflict
	default:
		// The local edit converged on the new upstream content.
		return Unchanged
	}
}
