// Package spawn separates building a unit of work from starting it.
//
// Deferred captures an action and returns an activator. Nothing runs until
// the activator is called; each call starts a fresh goroutine and returns a
// Handle that can be joined with Wait. Detached starts a goroutine right away
// and keeps no handle; use DetachedOn with a *Tracked runner when the caller
// needs to wait for detached work.
//
// A panic inside an action is recovered in its own goroutine, wrapped in a
// *lambda.ActionError and logged. It never reaches the caller.
package spawn
