// Package database provides SQLite-based storage for imported common-password lists.
//
// The WordlistDB keeps:
//   - One record per imported list (name, content digest, import time, size)
//   - Each list's words, so a word shared by several lists survives
//     deleting any one of them
//
// Only public word lists are stored here. Passwords submitted for analysis
// are never written to the database.
//
// SQLite is accessed through modernc.org/sqlite, a CGO-free driver, so the
// binary cross-compiles without a C toolchain. The database is a single
// file in the XDG data directory.
package database
