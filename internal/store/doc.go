// Package store provides a SQLite-backed catalog of rendered SPARQL queries.
//
// Every saved query is a revision: a (name, text) pair with a
// content-addressed ID. Saving the same text under the same name twice
// stores it once, so repeated renders of an unchanged document leave the
// catalog untouched.
//
// # Critical Patterns
//
// Content-addressed identity
//   - id = SHA-256("spanqit/query/v1" 0x00 name 0x00 NFC(text))
//   - hash = SHA-256("spanqit/text/v1" 0x00 NFC(text)), shared by equal texts
//
// Logical time
//   - Revisions are ordered by seq INTEGER (a logical clock), never by
//     timestamps
//
// Deterministic query results
//   - All queries include: ORDER BY seq ASC, id COLLATE BINARY ASC
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - One open connection: SQLite allows a single writer
package store
