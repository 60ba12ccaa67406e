package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectQuery_SQL(t *testing.T) {
	sql, args := NewSelect("users").SQL()

	assert.Equal(t, "SELECT * FROM `users`", sql)
	assert.Empty(t, args)

	sql, args = NewSelect("users").
		Columns("id", "name").
		Where(Eq("active", 1)).
		OrderBy("name", true).
		Limit(10).
		Offset(20).
		SQL()

	assert.Equal(t, "SELECT `id`, `name` FROM `users` WHERE `active` = ? ORDER BY `name` DESC LIMIT 10 OFFSET 20", sql)
	assert.Equal(t, []any{1}, args)
}

func TestSelectQuery_LimitZero(t *testing.T) {
	sql, _ := NewSelect("users").Limit(0).SQL()

	assert.Equal(t, "SELECT * FROM `users` LIMIT 0", sql)
}

func TestSelectQuery_OrderAscending(t *testing.T) {
	sql, _ := NewSelect("users").OrderBy("name", false).SQL()

	assert.Equal(t, "SELECT * FROM `users` ORDER BY `name`", sql)
}

func TestInsertQuery_SQL(t *testing.T) {
	var row Row
	row.Set("name", String("Ada"))
	row.Set("age", Int64(36))

	sql, args := NewInsert("users", row).SQL()

	assert.Equal(t, "INSERT INTO `users` (`name`, `age`) VALUES (?, ?)", sql)
	assert.Equal(t, []any{"Ada", int64(36)}, args)
}

func TestUpdateQuery_SQL(t *testing.T) {
	var row Row
	row.Set("name", String("Ada"))
	row.Set("age", Int64(37))

	sql, args := NewUpdate("users", row).Where(Eq("id", 5)).SQL()

	assert.Equal(t, "UPDATE `users` SET `name` = ?, `age` = ? WHERE `id` = ?", sql)
	assert.Equal(t, []any{"Ada", int64(37), 5}, args)
}

func TestUpdateQuery_NoWhere(t *testing.T) {
	var row Row
	row.Set("age", Int64(1))

	sql, args := NewUpdate("users", row).SQL()

	assert.Equal(t, "UPDATE `users` SET `age` = ?", sql)
	assert.Equal(t, []any{int64(1)}, args)
}

func TestDeleteQuery_SQL(t *testing.T) {
	sql, args := NewDelete("users").Where(Eq("id", 5)).SQL()

	assert.Equal(t, "DELETE FROM `users` WHERE `id` = ?", sql)
	assert.Equal(t, []any{5}, args)

	sql, args = NewDelete("users").SQL()

	assert.Equal(t, "DELETE FROM `users`", sql)
	assert.Empty(t, args)
}
