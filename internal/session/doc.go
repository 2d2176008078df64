// Package session implements the mock authentication state and the purchase ledger.
//
// A [Session] is either anonymous or authenticated. [Session.Login] and
// [Session.Register] suspend for a simulated latency before resolving; while
// suspended [Session.Pending] reports true and the observable state is
// unchanged. Cancelling the context abandons the attempt without mutating
// anything.
//
// Purchases belong to the profile, not to the user: [Session.Logout] keeps
// them, and a later login sees the same ledger.
package session
