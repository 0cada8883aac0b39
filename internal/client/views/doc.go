// Package views holds the view-models behind the shell's screens.
//
// A view is mounted, loads its data, exposes derived getters and performs
// write actions. Views own their data: nothing is shared or cached between
// them. Each Load is tagged with a generation per list it fills, and a list
// that arrives after Unmount or after a newer load of that list is dropped
// without touching the view.
//
// After a write a view either re-fetches the affected list or patches the
// changed item in place, matching what the backend returns for that action.
// Concurrent identical writes (a double submit) share one request.
package views
