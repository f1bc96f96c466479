package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Правка книги снаружи (другим процессом) сбрасывает тёплый кэш:
// следующее чтение видит новые строки.
func TestCacheInvalidatedByExternalEdit(t *testing.T) {
	path := makeWorkbook(t)
	st := testStore(t, path)
	ctx := context.Background()

	txs, err := st.LoadSales(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3) // кэш прогрет

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	row := []interface{}{"03.08.2025", "3", "alseit_40", "1", "наличные", "", "", "Alice"}
	cell, err := excelize.CoordinatesToCellName(1, 6)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("продажи", cell, &row))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	// mtime двигаем явно: разрешение файловой системы не должно влиять
	// на детерминированность теста.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	txs, err = st.LoadSales(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 4)
	require.Equal(t, "3", txs[3].Order)
}

func TestSheetCacheMtimeBump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	c := newSheetCache(time.Minute)
	c.set(path, "продажи", [][]string{{"a"}})

	rows, ok := c.get(path, "продажи")
	require.True(t, ok)
	require.Equal(t, [][]string{{"a"}}, rows)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok = c.get(path, "продажи")
	require.False(t, ok, "изменившийся файл обесценивает кэш")
}

func TestSheetCacheTTLExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	c := newSheetCache(time.Minute)
	c.set(path, "продажи", [][]string{{"a"}})

	// Состарим запись: TTL истёк, файл не менялся.
	c.mu.Lock()
	c.loadedAt[path+":продажи"] = time.Now().Add(-2 * time.Minute)
	c.mu.Unlock()

	_, ok := c.get(path, "продажи")
	require.False(t, ok, "просроченный кэш перечитывается")
}
