// Package model binds struct types to relational tables.
//
// Persistence is declared with a quest struct tag. The first tag segment
// overrides the column name, the rest are options:
//
//	type User struct {
//		ID     int       `quest:"id,id"`
//		Email  string    `quest:"email,unique,notnull,length=128"`
//		Bio    string    `quest:"bio,text"`
//		Score  float64   `quest:"score,default=0"`
//		Joined time.Time `quest:"joined"`
//		scratch int      // untagged, not persisted
//	}
//
// Options: id (auto-generated key), pk, unique, notnull, text,
// length=N, default=V, type=T (explicit SQL type, skips inference and
// constraints).
//
// Table ties a model type to a table name and a database handle, derives
// the CREATE TABLE column spec, converts instances to rows and back, and
// exposes typed statement builders (Select, Insert, Update, Delete).
package model
