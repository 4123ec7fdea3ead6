package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestItemctlAgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_BACKEND", "database")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:"+filepath.Join(dir, "catalog.db"))
	t.Setenv("DB_LOG_LEVEL", "silent")

	csvPath := filepath.Join(dir, "items.csv")
	csv := "Item sheet v2\nPlatform,Title,Category,Type,Rarity\n" +
		"Roblox,Dragon Hat,Wearable,Hat,Epic\n" +
		"Fortnite,Glider,Vehicle,Glider,\n" +
		",Orphan,,,\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o600))

	out, err := execute(t, "import", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 items, skipped 1 rows")
	assert.Contains(t, out, "row 3: missing required fields: platform")

	out, err = execute(t, "list", "--platform", "rob", "--json")
	require.NoError(t, err)
	var items []domain.VirtualItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Dragon Hat", items[0].Title)

	out, err = execute(t, "stats", "--json")
	require.NoError(t, err)
	var stats domain.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, int64(2), stats.TotalItems)

	exportPath := filepath.Join(dir, "export.csv")
	_, err = execute(t, "export", "-o", exportPath)
	require.NoError(t, err)
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Dragon Hat")
	assert.Contains(t, lines[2], "Glider")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, &domain.Stats{
		TotalItems: 3,
		ByPlatform: []domain.PlatformCount{{Platform: "Roblox", Count: 3}},
		ByCategory: []domain.CategoryCount{{Category: "Wearable", Count: 3}},
		ByRarity:   []domain.RarityCount{{Rarity: domain.UnknownRarity, Count: 3}},
	})
	out := buf.String()
	assert.Contains(t, out, "Total items: 3")
	assert.Contains(t, out, "Roblox")
	assert.Contains(t, out, "Unknown")
}

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, []*domain.VirtualItem{{ID: "a1", Title: "Hat", Platform: "Roblox"}})
	assert.Contains(t, buf.String(), "a1")
	assert.Contains(t, buf.String(), "1 items")
}
