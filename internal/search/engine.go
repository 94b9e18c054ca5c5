package search

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/isim/sbsearch/internal/model"
)

// Lines in bundle logs routinely exceed bufio's default token size
// (serialized k8s objects run to hundreds of KB), so the scan buffer is
// grown up front.
const maxLineSize = 4 * 1024 * 1024

// Engine walks a support bundle tree and collects keyword matches.
type Engine struct {
	fs  afero.Fs
	log *zap.Logger
}

func NewEngine(fs afero.Fs, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{fs: fs, log: log}
}

// Search walks the bundle rooted at root and returns a cache of every
// line containing keyword, sorted chronologically with undated entries
// last. Unreadable files and malformed archives are skipped with a
// warning; a directory read failure aborts the search, since it means
// the bundle itself is inaccessible.
func (e *Engine) Search(root, keyword string) (*Cache, error) {
	var entries []model.Entry
	if err := e.searchTree(root, root, keyword, &entries); err != nil {
		return nil, err
	}
	sortEntries(entries)
	return &Cache{keyword: keyword, entries: entries}, nil
}

func (e *Engine) searchTree(root, dir, keyword string, entries *[]model.Entry) error {
	if !includedPath(root, dir) {
		return nil
	}

	infos, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		if info.IsDir() {
			if err := e.searchTree(root, path, keyword, entries); err != nil {
				return err
			}
			continue
		}
		e.searchFile(path, keyword, entries)
	}
	return nil
}

// searchFile scans one candidate file, expanding it first when it is a
// zip archive. Per-file errors are logged and swallowed so a partially
// unreadable bundle still yields partial results.
func (e *Engine) searchFile(path, keyword string, entries *[]model.Entry) {
	archive, err := isArchive(e.fs, path)
	if err != nil {
		e.log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return
	}

	if archive {
		err := walkArchive(e.fs, path, func(virtualPath string, r io.Reader) error {
			return scanLines(r, virtualPath, keyword, entries)
		})
		if err != nil {
			e.log.Warn("skipping archive", zap.String("path", path), zap.Error(err))
		}
		return
	}

	f, err := e.fs.Open(path)
	if err != nil {
		e.log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	if err := scanLines(f, path, keyword, entries); err != nil {
		e.log.Warn("skipping rest of file", zap.String("path", path), zap.Error(err))
	}
}

// scanLines appends an Entry for every line of r containing keyword.
// Matching is a case-sensitive substring test. The line terminator is
// stripped; all other trailing whitespace is preserved.
func scanLines(r io.Reader, path, keyword string, entries *[]model.Entry) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, keyword) {
			continue
		}
		*entries = append(*entries, model.Entry{
			Level:     classifyLevel(line),
			Path:      path,
			Content:   line,
			Timestamp: extractTimestamp(line),
		})
	}
	return sc.Err()
}
