package main

import (
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-reader/app/driver/postgres/migrations"
	"news-reader/app/utils/migration"
)

func TestEmbeddedMigrations(t *testing.T) {
	loaded, err := migration.NewMigrator(nil, testLogger(), migrations.FS).LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, loaded)

	first := loaded[0]
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, "create_saved_articles", first.Name)
	assert.Contains(t, first.UpSQL, "UNIQUE (url)")
	assert.Contains(t, first.DownSQL, "DROP TABLE")

	_, err = fs.Stat(migrations.FS, "001_create_saved_articles.down.sql")
	assert.NoError(t, err)
}

func TestCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["up"])
	assert.True(t, names["down"])
	assert.True(t, names["status"])

	flag := downCmd.Flags().Lookup("steps")
	require.NotNil(t, flag)
	assert.Equal(t, "1", flag.DefValue)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
