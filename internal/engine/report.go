package engine

import (
	"sort"

	"github.com/vango-dev/termkit/internal/drift"
	"github.com/vango-dev/termkit/internal/fingerprint"
)

// Status is the outcome of one component in a batch.
type Status string

const (
	StatusInstalled Status = "installed"
	StatusUpgraded  Status = "upgraded"
	StatusUpToDate  Status = "up-to-date"
	StatusPending   Status = "pending"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Reason qualifies a skipped or failed Result.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonUnknownComponent    Reason = "unknown-component"
	ReasonInvalidDescriptor   Reason = "invalid-descriptor"
	ReasonRegistryUnavailable Reason = "registry-unavailable"
	ReasonFetchFailed         Reason = "fetch-failed"
	ReasonNotInstalled        Reason = "not-installed"
	ReasonAlreadyInstalled    Reason = "already-installed"
	ReasonFilesExist          Reason = "files-exist"
	ReasonLocalChanges        Reason = "local-changes"
	ReasonStorageFailed       Reason = "storage-failed"
)

// Result is the outcome for one component.
type Result struct {
	Name   string
	Status Status
	Reason Reason

	// Version is the version installed, or the upstream version for
	// pending and skipped upgrades.
	Version string

	// PreviousVersion is the ledger version before an upgrade.
	PreviousVersion string

	// Files lists the files written, in descriptor order.
	Files []string

	// Dependencies are the Go modules the component's code imports.
	Dependencies map[string]string

	// RequiredBy names the requested component that pulled this one in.
	// It is empty for components named on the command line.
	RequiredBy string

	// HasLocalChanges is set by Upgrade when a recorded file was edited.
	HasLocalChanges bool

	// Err explains a failed or skipped result.
	Err error
}

// OK reports whether the result is not a failure.
func (r Result) OK() bool {
	return r.Status != StatusFailed
}

// Results is an ordered list of per-component results.
type Results []Result

// Failed reports whether any result failed.
func (rs Results) Failed() bool {
	for _, r := range rs {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Count returns the number of results with status s.
func (rs Results) Count(s Status) int {
	n := 0
	for _, r := range rs {
		if r.Status == s {
			n++
		}
	}
	return n
}

// Get returns the result for name.
func (rs Results) Get(name string) (Result, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// Dependencies merges the Go module dependencies of every written component.
// When two components disagree on a version, the greater string wins.
func (rs Results) Dependencies() map[string]string {
	deps := make(map[string]string)
	for _, r := range rs {
		if r.Status != StatusInstalled && r.Status != StatusUpgraded {
			continue
		}
		for mod, v := range r.Dependencies {
			if v > deps[mod] {
				deps[mod] = v
			}
		}
	}
	return deps
}

// InstallReport is returned by Install.
type InstallReport struct {
	Results Results
}

// UpgradeReport is returned by Upgrade.
type UpgradeReport struct {
	Results Results

	// CheckOnly is set when nothing was written.
	CheckOnly bool

	// Excluded lists components left alone because of local changes.
	Excluded []string
}

// FileDrift is the classification of one file.
type FileDrift struct {
	File     string
	State    drift.State
	Local    fingerprint.Fingerprint
	Baseline fingerprint.Fingerprint
	Upstream fingerprint.Fingerprint
}

// CompareReport is returned by Compare.
type CompareReport struct {
	Name             string
	InstalledVersion string
	UpstreamVersion  string

	// Files holds upstream files in descriptor order followed by local-only
	// files, sorted.
	Files []FileDrift
}

// Count returns the number of files in state s.
func (r *CompareReport) Count(s drift.State) int {
	n := 0
	for _, f := range r.Files {
		if f.State == s {
			n++
		}
	}
	return n
}

// Counts returns the number of files per state, omitting zero counts.
func (r *CompareReport) Counts() map[drift.State]int {
	counts := make(map[drift.State]int)
	for _, f := range r.Files {
		counts[f.State]++
	}
	return counts
}

// HasLocalChanges reports whether any file was edited locally.
func (r *CompareReport) HasLocalChanges() bool {
	for _, f := range r.Files {
		if f.State.Changed() {
			return true
		}
	}
	return false
}

// InSync reports whether every file is unchanged and the versions agree.
func (r *CompareReport) InSync() bool {
	if r.InstalledVersion != r.UpstreamVersion {
		return false
	}
	for _, f := range r.Files {
		if f.State != drift.Unchanged {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
