// Package tui is the interactive terminal frontend: a directory wizard
// for missing startup options and the browse view for sorting images
// into destination folders.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/photopick/internal/config"
	"github.com/jask/photopick/internal/gallery"
)

type appState string

const (
	statePickSource appState = "pickSource"
	statePickTarget appState = "pickTarget"
	stateAskMore    appState = "askMore"
	stateLoading    appState = "loading"
	stateBrowse     appState = "browse"
)

// App ties the wizard, pager and sync operations together.
type App struct {
	cfg    config.Config
	svc    *gallery.SyncService
	notify <-chan string

	pager   *gallery.Pager
	source  string
	targets []string

	state  appState
	picker filepicker.Model
	keys   keyMap
	help   help.Model
	prog   progress.Model

	windowCount int
	previewRows int
	destCursor  int

	// previews and captions are cached per size; sizeKey invalidates
	// the cache when the preview box changes.
	previews map[string]string
	captions map[string]string
	sizeKey  string

	// presence of the window's images in each destination, recomputed
	// from disk after every action and navigation.
	presence map[string]map[string]bool

	status string
	width  int
	height int
}

// New builds the app. Empty source or targets send the user through
// the directory wizard before browsing starts.
func New(cfg config.Config, svc *gallery.SyncService, notify <-chan string, source string, targets []string) *App {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	a := &App{
		cfg:         cfg,
		svc:         svc,
		notify:      notify,
		source:      source,
		targets:     targets,
		keys:        newKeyMap(),
		help:        help.New(),
		prog:        prog,
		windowCount: cfg.UI.WindowCount,
		previewRows: cfg.UI.PreviewRows,
		previews:    map[string]string{},
		captions:    map[string]string{},
		presence:    map[string]map[string]bool{},
	}
	switch {
	case source == "":
		a.state = statePickSource
		a.picker = newDirPicker()
	case len(targets) == 0:
		a.state = statePickTarget
		a.picker = newDirPicker()
	default:
		a.state = stateLoading
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.listenNotify()}
	if a.state == statePickSource || a.state == statePickTarget {
		cmds = append(cmds, a.picker.Init())
	}
	if a.source != "" {
		cmds = append(cmds, loadPagerCmd(a.source))
	}
	return tea.Batch(cmds...)
}

// listenNotify forwards sync progress messages into the status bar,
// re-arming after each one.
func (a *App) listenNotify() tea.Cmd {
	if a.notify == nil {
		return nil
	}
	ch := a.notify
	return func() tea.Msg {
		return notifyMsg(<-ch)
	}
}

func loadPagerCmd(source string) tea.Cmd {
	return func() tea.Msg {
		p, err := gallery.Load(source)
		if err != nil {
			return errMsg{fmt.Errorf("scan %s: %w", source, err)}
		}
		return pagerLoadedMsg{pager: p}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if w := msg.Width - 6; w > 0 && w < 40 {
			a.prog.Width = w
		}
		a.picker.Height = pickerHeight(msg.Height)
		return a, nil
	case notifyMsg:
		a.status = string(msg)
		return a, a.listenNotify()
	case errMsg:
		a.status = "error: " + msg.Error()
		return a, nil
	case pagerLoadedMsg:
		a.pager = msg.pager
		if a.state == stateLoading {
			return a, a.enterBrowse()
		}
		return a, nil
	case presenceMsg:
		a.presence = msg
		return a, nil
	case previewsMsg:
		if msg.sizeKey == a.sizeKey {
			for path, box := range msg.previews {
				a.previews[path] = box
			}
			for path, caption := range msg.captions {
				a.captions[path] = caption
			}
		}
		return a, nil
	case actionDoneMsg:
		if msg.err != nil {
			a.status = "error: " + msg.err.Error()
		}
		// action completed: re-read presence from disk
		return a, a.refreshCmd()
	case tea.KeyMsg:
		switch a.state {
		case statePickSource, statePickTarget:
			return a.updatePicker(msg)
		case stateAskMore:
			return a.updateAskMore(msg)
		case stateLoading:
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			return a, nil
		case stateBrowse:
			return a.updateBrowse(msg)
		}
	}

	if a.state == statePickSource || a.state == statePickTarget {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) View() string {
	switch a.state {
	case statePickSource:
		return a.viewPicker("Select the folder with the images to sort.")
	case statePickTarget:
		return a.viewPicker("Select a folder to sort images into.")
	case stateAskMore:
		return a.viewAskMore()
	case stateLoading:
		body := statusStyle.Render("scanning images... (q quits)")
		if a.status != "" {
			body += "\n" + a.renderStatus()
		}
		return body
	default:
		return a.viewBrowse()
	}
}

// enterBrowse switches into the browse view once source, targets and
// the scanned image set are all available.
func (a *App) enterBrowse() tea.Cmd {
	a.state = stateBrowse
	a.destCursor = 0
	if a.status == "" {
		a.status = fmt.Sprintf("%d images in %s", a.pager.Len(), a.source)
	}
	return tea.Batch(a.refreshCmd(), a.previewCmd())
}

// messages

type notifyMsg string

type errMsg struct{ error }

type pagerLoadedMsg struct{ pager *gallery.Pager }

type presenceMsg map[string]map[string]bool

type previewsMsg struct {
	sizeKey  string
	previews map[string]string
	captions map[string]string
}

type actionDoneMsg struct{ err error }

func pickerHeight(termHeight int) int {
	h := termHeight - 8
	if h < 5 {
		h = 5
	}
	if h > 20 {
		h = 20
	}
	return h
}
