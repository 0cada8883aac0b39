// Package session owns the authenticated identity of the client.
//
// A Store is the single source of truth for "who is signed in". It starts in
// a loading state, restores any persisted session in Init, and from then on
// moves between unauthenticated and authenticated through Login, AdminLogin
// and Logout. Every transition that changes the session writes durable state
// first, so memory never holds a session that storage does not.
//
// Login and Register never return errors: every failure, whether a network
// error, an HTTP status or the backend's bare-string rejection, is folded
// into a Result with Success=false and a message fit for display.
package session
