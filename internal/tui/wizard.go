package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// newDirPicker builds a filepicker restricted to directory selection,
// starting from the user's home directory.
func newDirPicker() filepicker.Model {
	fp := filepicker.New()
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.Height = 15
	fp.AutoHeight = false
	return fp
}

func (a *App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "esc":
		// a selection is required; stay in the picker until one is made
		if a.state == statePickSource {
			a.status = "A source folder must be selected."
		} else {
			a.status = "At least one destination folder must be selected."
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	if ok, path := a.picker.DidSelectFile(msg); ok {
		return a.dirPicked(path)
	}
	return a, cmd
}

func (a *App) dirPicked(path string) (tea.Model, tea.Cmd) {
	a.status = ""
	switch a.state {
	case statePickSource:
		a.source = path
		if len(a.targets) == 0 {
			a.state = statePickTarget
			a.picker = newDirPicker()
			a.picker.Height = pickerHeight(a.height)
			return a, tea.Batch(loadPagerCmd(path), a.picker.Init())
		}
		a.state = stateLoading
		return a, loadPagerCmd(path)
	case statePickTarget:
		a.targets = append(a.targets, path)
		a.state = stateAskMore
		return a, nil
	}
	return a, nil
}

func (a *App) updateAskMore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "y", "Y":
		a.state = statePickTarget
		a.picker = newDirPicker()
		a.picker.Height = pickerHeight(a.height)
		return a, a.picker.Init()
	case "n", "N", "esc", "enter":
		if a.pager != nil {
			return a, a.enterBrowse()
		}
		a.state = stateLoading
		return a, nil
	}
	return a, nil
}

func (a *App) viewPicker(prompt string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("photopick"))
	b.WriteString("\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(a.picker.View())
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("enter selects the highlighted folder · q quits"))
	return b.String()
}

func (a *App) viewAskMore() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Destinations so far"))
	for _, dir := range a.targets {
		lines = append(lines, "  "+dir)
	}
	lines = append(lines, "", "Add another destination folder? [y/n]")
	body := modalStyle.Render(strings.Join(lines, "\n"))
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return fmt.Sprintf("%s\n\n%s", titleStyle.Render("photopick"), body)
}
