// Package kv implements the local key-value store used in place of a
// database: small string-keyed blobs (session token, serialized user,
// settings, notes) kept in the `kv` table of the client SQLite file.
//
// Get returns (nil, nil) for a missing key; Delete and Clear are idempotent.
// Repositories accept a dbx.DBTX so they can run on *sql.DB or inside a
// transaction started with dbx.WithTx.
package kv
