package ui

import "github.com/isim/sbsearch/internal/search"

// SearchDoneMsg delivers the one-time bundle scan result.
type SearchDoneMsg struct {
	Cache *search.Cache
	Err   error
}

// SaveDoneMsg reports the outcome of writing the cache to disk.
type SaveDoneMsg struct {
	Filename string
	Err      error
}
