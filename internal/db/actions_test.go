package db

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/supplier-matcher/pkg/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestImportAction(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "stores.csv")
	dbPath := filepath.Join(dir, "stores.db")
	content := "URL,Categories,Description\nhttps://a.example.com,Fashion,Tokyo denim\nhttps://b.example.com,Home,Kyoto tables\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0644))

	var out bytes.Buffer
	app := &cli.App{
		Writer: &out,
		Commands: []*cli.Command{
			{Name: "import", Flags: ImportFlags(), Action: ImportAction},
		},
	}

	require.NoError(t, app.Run([]string{"supplier-matcher", "import", "--from", csvPath, "--db", dbPath}))
	assert.Contains(t, out.String(), "Imported 2 stores")

	records, err := directory.Open(dbPath).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Kyoto tables", records[1].Description)
}

func TestImportAction_MissingFlags(t *testing.T) {
	app := &cli.App{
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
		Commands: []*cli.Command{
			{Name: "import", Flags: ImportFlags(), Action: ImportAction},
		},
	}

	assert.Error(t, app.Run([]string{"supplier-matcher", "import", "--from", "stores.csv"}))
}
