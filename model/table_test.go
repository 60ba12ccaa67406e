package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avicus/quest/database"
)

func TestNewTable_InvalidModels(t *testing.T) {
	_, err := NewTable[int](nil, "numbers")
	require.ErrorIs(t, err, ErrModel)

	type twice struct {
		A int `quest:"a,id"`
		B int `quest:"b,id"`
	}

	_, err = NewTable[twice](nil, "twice")
	require.ErrorIs(t, err, ErrModel)
}

func TestTable_Accessors(t *testing.T) {
	type user struct {
		ID    int    `quest:"id,id"`
		Email string `quest:"email,unique,notnull"`
	}

	tbl, err := NewTable[user](nil, "users")
	require.NoError(t, err)

	assert.Equal(t, "users", tbl.Name())
	assert.Equal(t, []string{"id", "email"}, tbl.ColumnNames())

	id, ok := tbl.Identity()
	require.True(t, ok)
	assert.Equal(t, "id", id.Name)

	require.Len(t, tbl.Columns(), 2)
}

func TestCreateSpec_EmptyModel(t *testing.T) {
	type bare struct {
		Scratch int
	}

	tbl, err := NewTable[bare](nil, "bare")
	require.NoError(t, err)

	spec, err := tbl.CreateSpec()

	require.NoError(t, err)
	assert.Empty(t, spec)
}

func TestCreateSpec_FullModel(t *testing.T) {
	type post struct {
		ID      int       `quest:"id,id"`
		Title   string    `quest:"title,notnull,length=120"`
		Body    string    `quest:"body,text"`
		Stars   float64   `quest:"stars,default=0"`
		Draft   bool      `quest:"draft"`
		Written time.Time `quest:"written"`
	}

	tbl, err := NewTable[post](nil, "posts")
	require.NoError(t, err)

	spec, err := tbl.CreateSpec()
	require.NoError(t, err)

	assert.Equal(t, []database.Column{
		{Name: "id", Type: "INT AUTO_INCREMENT NOT NULL PRIMARY KEY"},
		{Name: "title", Type: "VARCHAR(120) NOT NULL"},
		{Name: "body", Type: "TEXT"},
		{Name: "stars", Type: "DOUBLE DEFAULT 0"},
		{Name: "draft", Type: "TINYINT"},
		{Name: "written", Type: "DATETIME"},
	}, spec)
}

func TestCreateSpec_AllOrNothing(t *testing.T) {
	type halfBad struct {
		Name string   `quest:"name"`
		Data []string `quest:"data"`
	}

	tbl, err := NewTable[halfBad](nil, "half_bad")
	require.NoError(t, err)

	spec, err := tbl.CreateSpec()

	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, spec)
}
