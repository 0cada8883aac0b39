// Package nav decides where the shell goes: whether a protected route may
// render for the current session, and which dashboard a role lands on.
// Both decisions are pure functions of their inputs.
package nav
