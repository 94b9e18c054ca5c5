package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/isim/sbsearch/internal/config"
	"github.com/isim/sbsearch/internal/search"
	"github.com/isim/sbsearch/internal/tui/confirm"
	"github.com/isim/sbsearch/internal/tui/results"
	"github.com/isim/sbsearch/internal/ui"
)

type Screen int

const (
	ScreenMain Screen = iota
	ScreenConfirmExit
	ScreenConfirmSave
)

// SearchMode is the free-text field's sub-mode, active only on the
// main screen.
type SearchMode int

const (
	ModeNormal SearchMode = iota
	ModeInsert
)

const (
	actionExit = "exit"
	actionSave = "save"
)

// App is the viewer state machine. The result cache is owned by one App
// instance for the process lifetime; all effects (the one-time scan,
// saving to disk, quitting) are returned as commands.
type App struct {
	cfg    config.Config
	engine *search.Engine

	cache       *search.Cache
	resultsView results.Model
	confirmView confirm.Model
	filterInput textinput.Model

	screen Screen
	mode   SearchMode

	page      int
	pageFinal int
	reload    bool
	scanning  bool

	saveFilename string
	status       string
	width        int
	height       int
}

func NewApp(cfg config.Config, engine *search.Engine) App {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "highlight within page"
	ti.CharLimit = 256

	return App{
		cfg:         cfg,
		engine:      engine,
		resultsView: results.New(cfg.BundlePath),
		filterInput: ti,
		screen:      ScreenMain,
		mode:        ModeNormal,
		page:        1,
		pageFinal:   1,
		reload:      true,
		scanning:    true,
		status:      "Scanning bundle...",
	}
}

func (a App) Init() tea.Cmd {
	return a.runSearch()
}

// runSearch performs the one blocking bundle scan. It runs exactly once
// per keyword; every later page change is a pure window re-derivation
// over the populated cache.
func (a App) runSearch() tea.Cmd {
	engine, root, keyword := a.engine, a.cfg.BundlePath, a.cfg.Keyword
	return func() tea.Msg {
		cache, err := engine.Search(root, keyword)
		return ui.SearchDoneMsg{Cache: cache, Err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resultsView.SetSize(a.width, a.listHeight())
		a.filterInput.Width = a.width - len(a.filterInput.Prompt) - 2
		return a, nil

	case ui.SearchDoneMsg:
		a.scanning = false
		if msg.Err != nil {
			a.status = fmt.Sprintf("Search failed: %v", msg.Err)
			return a, nil
		}
		a.cache = msg.Cache
		a.pageFinal = a.cache.PageCount(a.cfg.PageSize)
		a.status = fmt.Sprintf("%d matches for %q", a.cache.Len(), a.cfg.Keyword)
		a.loadPage()
		return a, nil

	case ui.SaveDoneMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("Save failed: %v", msg.Err)
		} else {
			a.status = fmt.Sprintf("Saved %s", msg.Filename)
		}
		return a, nil

	case confirm.ResultMsg:
		return a.handleConfirm(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleConfirm(msg confirm.ResultMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case actionExit:
		if msg.Confirmed {
			return a, tea.Quit
		}
		a.screen = ScreenMain
		return a, nil

	case actionSave:
		// Back to Main regardless of the outcome; a failure surfaces
		// in the status bar.
		a.screen = ScreenMain
		if !msg.Confirmed {
			return a, nil
		}
		return a, a.saveResults(a.saveFilename)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.screen == ScreenConfirmExit || a.screen == ScreenConfirmSave {
		var cmd tea.Cmd
		a.confirmView, cmd = a.confirmView.Update(msg)
		return a, cmd
	}
	if a.mode == ModeInsert {
		return a.handleInsertKey(msg)
	}
	return a.handleNormalKey(msg)
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Quit):
		a.confirmView = confirm.New("Confirm Exit", "are you sure you want to exit?", actionExit)
		a.screen = ScreenConfirmExit

	case key.Matches(msg, ui.Keys.Save):
		// The filename is snapshotted here so the popup and the write
		// agree even if confirmation takes a while.
		a.saveFilename = search.SaveFilename(time.Now())
		a.confirmView = confirm.New("Confirm Save",
			fmt.Sprintf("save search result to ./%s?", a.saveFilename), actionSave)
		a.screen = ScreenConfirmSave

	case key.Matches(msg, ui.Keys.Search):
		a.mode = ModeInsert
		a.filterInput.Reset()
		return a, a.filterInput.Focus()

	case key.Matches(msg, ui.Keys.ClearSearch):
		a.filterInput.Reset()
		a.resultsView.SetFilter("")

	case key.Matches(msg, ui.Keys.Up):
		a.resultsView.CursorUp()

	case key.Matches(msg, ui.Keys.Down):
		a.resultsView.CursorDown()

	case key.Matches(msg, ui.Keys.First):
		a.resultsView.CursorFirst()

	case key.Matches(msg, ui.Keys.Last):
		a.resultsView.CursorLast()

	case key.Matches(msg, ui.Keys.PrevPage):
		if a.page > 1 {
			a.page--
			a.reload = true
		}

	case key.Matches(msg, ui.Keys.NextPage):
		if a.page < a.pageFinal {
			a.page++
			a.reload = true
		}
	}

	if a.reload {
		a.loadPage()
	}
	return a, nil
}

func (a App) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.resultsView.SetFilter(a.filterInput.Value())
		a.filterInput.Blur()
		a.mode = ModeNormal
		return a, nil
	case "esc":
		a.filterInput.Reset()
		a.resultsView.SetFilter("")
		a.filterInput.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	return a, cmd
}

// loadPage re-derives the visible window from the already-populated
// cache. No I/O, no rescans.
func (a *App) loadPage() {
	a.reload = false
	if a.cache == nil {
		return
	}
	offset := (a.page - 1) * a.cfg.PageSize
	a.resultsView.SetWindow(a.cache.Query(offset, a.cfg.PageSize), offset)
}

// saveResults writes the entire cache, not just the current page.
func (a App) saveResults(filename string) tea.Cmd {
	cache := a.cache
	return func() tea.Msg {
		if cache == nil {
			return ui.SaveDoneMsg{Filename: filename, Err: fmt.Errorf("no search results yet")}
		}
		f, err := os.Create(filename)
		if err != nil {
			return ui.SaveDoneMsg{Filename: filename, Err: err}
		}
		defer f.Close()
		if err := cache.SaveTo(f); err != nil {
			return ui.SaveDoneMsg{Filename: filename, Err: err}
		}
		return ui.SaveDoneMsg{Filename: filename}
	}
}

func (a App) listHeight() int {
	// header + meta (2) + search row + status bar
	h := a.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

func (a App) View() string {
	if a.screen == ScreenConfirmExit || a.screen == ScreenConfirmSave {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.confirmView.View())
	}

	header := RenderHeader(a.cfg.BundlePath, a.width)
	meta := a.renderMeta()
	searchRow := a.filterInput.View()
	list := a.resultsView.View()
	if a.scanning {
		list = ui.StyleMuted.Render("Scanning bundle...")
	}

	hints := "k/j move | g/G ends | ←/→ page | / search | c clear | s save | q quit"
	status := RenderStatusBar(a.status, hints, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, meta, searchRow, list, status)
}

func (a App) renderMeta() string {
	total := 0
	if a.cache != nil {
		total = a.cache.Len()
	}
	info := fmt.Sprintf("Keyword: %s | Line: %d/%d | Page: %d/%d",
		a.cfg.Keyword, a.resultsView.SelectedLine(), total, a.page, a.pageFinal)
	path := "Filepath: " + a.resultsView.SelectedPath()
	return ui.StyleLabel.Render(info) + "\n" + ui.StyleLabel.Render(path)
}
