// Package store persists application state snapshots as named profiles in
// a local SQLite database.
//
// A profile is the durable analog of the original single-blob browser
// storage: one opaque JSON document per profile name, replaced wholesale
// on every save (last write wins). Corrupt blobs are reported with a
// sentinel error so callers can log and fall back to defaults; they never
// crash a load.
package store
