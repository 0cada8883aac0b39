// Package cli provides the interactive FarmChainX command-line client.
//
// It wires configuration, the local session database, the REST client and
// the session store behind a small REPL. Every command that shows or changes
// role-specific data is gated by nav.Decide; "dashboard" picks the view for
// the signed-in role through nav.Dispatch.
//
// Command failures are printed and the loop continues. The REPL is started
// via App.Run(ctx), which blocks until the user exits or stdin is closed.
package cli
