// Package client contains the client-side building blocks below the
// services layer.
//
// # Overview
//
//  1. The authentication backend contract (see Client): SignIn and SignUp.
//  2. MockClient, which fabricates a user and a mock_token_<millis> token
//     after an artificial delay, applying the same credential rules a real
//     backend would.
//  3. LocalClient, a real local account store (bcrypt hashes in SQLite,
//     HS256 tokens) that plugs into the same seam.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite file and the embedded goose migrations.
//
// # Error Handling
//
// Credential rule failures are *models.ValidationError values carrying the
// user-facing message. Other conditions are sentinel errors matched with
// errors.Is: ErrAccountExists, ErrUnknownBackend, ErrNoTokenSecret.
//
// All backend operations accept a context.Context; cancelling it aborts the
// simulated latency wait.
package client
