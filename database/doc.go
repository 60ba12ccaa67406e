// Package database provides the connection handle the rest of the module
// talks to.
//
// Database wraps a database/sql pool with statement logging, row
// materialization into query.Row, and DDL helpers (CreateTable,
// DropTable). Config describes a connection declaratively and can be
// loaded from YAML; the driver itself is registered by the caller through
// the usual blank import.
package database
