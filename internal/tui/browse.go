package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/photopick/internal/config"
	"github.com/jask/photopick/internal/preview"
)

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}
	if a.pager == nil {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Prev):
		a.pager.Advance(-1)
		return a, tea.Batch(a.refreshCmd(), a.previewCmd())
	case key.Matches(msg, a.keys.Next):
		a.pager.Advance(1)
		return a, tea.Batch(a.refreshCmd(), a.previewCmd())
	case key.Matches(msg, a.keys.DestUp):
		if a.destCursor > 0 {
			a.destCursor--
		}
		return a, nil
	case key.Matches(msg, a.keys.DestDown):
		if a.destCursor < len(a.targets)-1 {
			a.destCursor++
		}
		return a, nil
	case key.Matches(msg, a.keys.Copy):
		file := a.pager.Current()
		if file == "" {
			a.status = "no image to copy"
			return a, nil
		}
		return a, a.actionCmd(a.svc.Copy, file, a.targets[a.destCursor])
	case key.Matches(msg, a.keys.Delete):
		file := a.pager.Current()
		if file == "" {
			a.status = "no image to delete"
			return a, nil
		}
		return a, a.actionCmd(a.svc.Delete, file, a.targets[a.destCursor])
	case key.Matches(msg, a.keys.WindowInc):
		if a.windowCount < config.MaxWindowCount {
			a.windowCount++
			return a, tea.Batch(a.refreshCmd(), a.previewCmd())
		}
		return a, nil
	case key.Matches(msg, a.keys.WindowDec):
		if a.windowCount > config.MinWindowCount {
			a.windowCount--
			return a, tea.Batch(a.refreshCmd(), a.previewCmd())
		}
		return a, nil
	case key.Matches(msg, a.keys.SizeInc):
		if a.previewRows < config.MaxPreviewRows {
			a.previewRows += 2
			return a, a.previewCmd()
		}
		return a, nil
	case key.Matches(msg, a.keys.SizeDec):
		if a.previewRows > config.MinPreviewRows {
			a.previewRows -= 2
			return a, a.previewCmd()
		}
		return a, nil
	}
	return a, nil
}

// actionCmd runs a copy or delete against one destination and reports
// completion, which in turn triggers a presence refresh.
func (a *App) actionCmd(op func(file, dir string) error, file, dir string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: op(file, dir)}
	}
}

// refreshCmd recomputes, from disk, which destinations already hold
// each image of the current window.
func (a *App) refreshCmd() tea.Cmd {
	if a.pager == nil || len(a.targets) == 0 {
		return nil
	}
	window := a.pager.Window(a.windowCount)
	targets := append([]string(nil), a.targets...)
	svc := a.svc
	return func() tea.Msg {
		pres := make(map[string]map[string]bool, len(window))
		for _, img := range window {
			byDir := make(map[string]bool, len(targets))
			for _, dir := range targets {
				ok, err := svc.Exists(img, dir)
				if err != nil {
					return errMsg{err}
				}
				byDir[dir] = ok
			}
			pres[img] = byDir
		}
		return presenceMsg(pres)
	}
}

// previewCmd renders the window images that are not cached yet for the
// current preview size.
func (a *App) previewCmd() tea.Cmd {
	if a.pager == nil {
		return nil
	}
	window := a.pager.Window(a.windowCount)
	pw := a.previewWidth()
	rows := a.previewRows
	sizeKey := fmt.Sprintf("%dx%d", pw, rows)
	if a.sizeKey != sizeKey {
		a.sizeKey = sizeKey
		a.previews = map[string]string{}
		a.captions = map[string]string{}
	}
	var missing []string
	for _, img := range window {
		if _, ok := a.previews[img]; !ok {
			missing = append(missing, img)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	showExif := a.cfg.UI.ShowExif
	dateFormat := a.cfg.UI.DateFormat
	return func() tea.Msg {
		msg := previewsMsg{
			sizeKey:  sizeKey,
			previews: make(map[string]string, len(missing)),
			captions: make(map[string]string, len(missing)),
		}
		for _, img := range missing {
			box, err := preview.Render(img, pw, rows)
			if err != nil {
				box = statusStyle.Render("(preview failed)")
			}
			msg.previews[img] = box
			caption := filepath.Base(img)
			if showExif {
				if ts, err := preview.CaptureDate(img); err == nil {
					caption += "  " + ts.Format(dateFormat)
				}
			}
			msg.captions[img] = caption
		}
		return msg
	}
}

// previewWidth divides the terminal width across the window images,
// leaving room for borders and padding.
func (a *App) previewWidth() int {
	total := a.width
	if total == 0 {
		total = 80
	}
	w := total/a.windowCount - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (a *App) viewBrowse() string {
	if a.pager == nil {
		return statusStyle.Render("scanning images...")
	}
	title := titleStyle.Render("photopick")
	if a.pager.Len() == 0 {
		return strings.Join([]string{
			title,
			fmt.Sprintf("no images found in %s", a.source),
			a.renderStatus(),
			a.help.View(a.keys),
		}, "\n\n")
	}

	current := a.pager.Current()
	strip := a.renderStrip(current)
	position := fmt.Sprintf("image %d of %d", a.pager.Cursor()+1, a.pager.Len())
	bar := a.prog.ViewAs(a.pager.Progress() / 100)

	sections := []string{
		title,
		strip,
		position + "  " + bar,
		a.renderDestinations(current),
		a.renderStatus() + "\n" + a.help.View(a.keys),
	}
	return strings.Join(sections, "\n\n")
}

// renderStrip lays the window's preview boxes out side by side, with
// the cursor image framed in a highlighted border.
func (a *App) renderStrip(current string) string {
	window := a.pager.Window(a.windowCount)
	pw := a.previewWidth()
	boxes := make([]string, 0, len(window))
	for _, img := range window {
		box, ok := a.previews[img]
		if !ok {
			box = statusStyle.Render("rendering...")
		}
		caption := a.captions[img]
		if caption == "" {
			caption = filepath.Base(img)
		}
		content := box + "\n" + captionStyle.Width(pw).Render(truncate(caption, pw))
		style := boxStyle
		if img == current {
			style = focusedBoxStyle
		}
		boxes = append(boxes, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (a *App) renderDestinations(current string) string {
	lines := make([]string, 0, len(a.targets)+1)
	lines = append(lines, subtitleStyle.Render("Destinations"))
	pres := a.presence[current]
	for i, dir := range a.targets {
		marker := "  "
		if i == a.destCursor {
			marker = "> "
		}
		badge := "[not in]"
		if a.cfg.UI.ColorBadges {
			badge = badgeOut.Render("not in")
		}
		if pres[dir] {
			badge = "[in]    "
			if a.cfg.UI.ColorBadges {
				badge = badgeIn.Render("in    ")
			}
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, badge, filepath.Base(dir)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderStatus() string {
	return statusStyle.Render(a.status)
}
