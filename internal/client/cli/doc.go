// Package cli provides the interactive LearningHub terminal client.
//
// App wires configuration, the local SQLite store, the auth backend and the
// services, then runs a REPL. Commands are looked up in one of two route
// tables (routes.go), chosen by whether the session manager reports an
// authenticated user, so signing in or out switches the command set at
// once. The session manager is reached through auth.FromContext.
//
// Run blocks until the user exits or input ends.
package cli
