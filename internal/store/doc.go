// Package store provides SQLite-backed durable storage for trendlab.
//
// The store owns two append-only tables:
//   - samples: user-submitted observations (id, value, note)
//   - fit_records: goodness-of-fit snapshots (id, r2, mae, mse)
//
// Neither table is ever updated or pruned by the application.
//
// # Ordering
//
// All reads order by id ASC. Sample ids are AUTOINCREMENT, so the position of
// a sample in AllSampleValues is its insertion order and doubles as the
// independent variable of the trend fit. The current metrics snapshot is the
// fit record with the highest id.
//
// # Errors
//
// Every failure of the underlying medium (unreachable file, corrupt schema,
// type mismatch) is returned as a *PersistenceError naming the operation.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//
// Use OpenMemory in tests to get an isolated in-memory instance.
package store
