package search

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/isim/sbsearch/internal/model"
)

// Cache holds every match for one (bundle root, keyword) pair, sorted.
// It is a memoization, not a live view: populated by exactly one walk
// and never rescanned, so results go stale if the bundle changes.
type Cache struct {
	keyword string
	entries []model.Entry
}

// sortEntries orders entries ascending by timestamp, with undated
// entries after all dated ones. The sort is stable so ties among
// undated entries keep discovery order.
func sortEntries(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Timestamp, entries[j].Timestamp
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

func (c *Cache) Keyword() string { return c.keyword }

func (c *Cache) Len() int { return len(c.entries) }

// Query returns a cloned window of entries at (offset, limit), clamped
// to the cache bounds. An offset at or past the end yields an empty
// window, not an error. Pure view computation: no I/O, no rescans.
func (c *Cache) Query(offset, limit int) []model.Entry {
	if offset < 0 || offset >= len(c.entries) || limit <= 0 {
		return nil
	}
	if remaining := len(c.entries) - offset; limit > remaining {
		limit = remaining
	}
	window := make([]model.Entry, limit)
	copy(window, c.entries[offset:offset+limit])
	return window
}

// PageCount returns the number of pages at the given page size. There
// is always a page 1, possibly empty.
func (c *Cache) PageCount(pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (len(c.entries) + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// SaveTo writes the entire cache to w, one raw matched line per entry,
// in cache order, with no delimiters or metadata added.
func (c *Cache) SaveTo(w io.Writer) error {
	for _, entry := range c.entries {
		if _, err := fmt.Fprintln(w, entry.Content); err != nil {
			return err
		}
	}
	return nil
}

// SaveFilename names the persisted artifact for a save confirmed at the
// given instant.
func SaveFilename(now time.Time) string {
	return fmt.Sprintf("sbsearch_%s.log", now.UTC().Format("20060102150405"))
}
