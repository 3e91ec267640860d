// Package engine synchronizes vendored components with the registry.
//
// The engine owns three operations:
//
//   - Install copies components, and the components they require, into the
//     project and records a fingerprint per file in the ledger.
//   - Compare classifies every file of one installed component against its
//     ledger baseline and the current upstream copy. It never writes.
//   - Upgrade reinstalls components whose upstream version moved, skipping
//     those with local edits unless forced.
//
// The ledger is passed in by the caller, mutated in memory, and saved by the
// caller once the operation returns. Per-component problems (unknown names,
// failed downloads, local edits) are recorded as Results and never abort a
// batch. Storage failures abort the operation; the report returned alongside
// the error covers the components completed before the failure.
package engine
