// Package query holds the row value representation and the SQL statement
// builders.
//
// Values travel between models and the database as tagged unions (Value),
// grouped into ordered named collections (Row). The builders (SelectQuery,
// InsertQuery, UpdateQuery, DeleteQuery) assemble placeholder SQL from
// table and column names; they know nothing about models and never touch
// the database themselves.
package query
