package excel

import (
	"os"
	"sync"
	"time"
)

// sheetCache — кэш прочитанных листов с TTL и проверкой mtime файла.
// Книгу правят руками между прогонами: изменился файл — кэш сбрасывается.
type sheetCache struct {
	mu  sync.Mutex
	ttl time.Duration

	rows     map[string][][]string // ключ path:sheet
	loadedAt map[string]time.Time
	modTime  map[string]time.Time // ключ path
}

func newSheetCache(ttl time.Duration) *sheetCache {
	return &sheetCache{
		ttl:      ttl,
		rows:     map[string][][]string{},
		loadedAt: map[string]time.Time{},
		modTime:  map[string]time.Time{},
	}
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

func (c *sheetCache) get(path, sheet string) ([][]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := path + ":" + sheet
	rows, ok := c.rows[key]
	if !ok {
		return nil, false
	}
	if fileModTime(path).After(c.modTime[path]) {
		c.invalidateLocked(path)
		return nil, false
	}
	if time.Since(c.loadedAt[key]) > c.ttl {
		delete(c.rows, key)
		delete(c.loadedAt, key)
		return nil, false
	}
	return rows, true
}

func (c *sheetCache) set(path, sheet string, rows [][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := path + ":" + sheet
	c.rows[key] = rows
	c.loadedAt[key] = time.Now()
	c.modTime[path] = fileModTime(path)
}

// invalidate сбрасывает кэш файла — вызывается после каждой записи книги.
func (c *sheetCache) invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(path)
}

func (c *sheetCache) invalidateLocked(path string) {
	for key := range c.rows {
		if len(key) > len(path) && key[:len(path)] == path && key[len(path)] == ':' {
			delete(c.rows, key)
			delete(c.loadedAt, key)
		}
	}
	delete(c.modTime, path)
}
