package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/photopick/internal/config"
	"github.com/jask/photopick/internal/gallery"
)

func testConfig() config.Config {
	return config.Config{UI: config.UIConfig{
		WindowCount: 1,
		PreviewRows: 8,
		ColorBadges: true,
		DateFormat:  "2006-01-02",
	}}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newBrowseApp wires an app straight into the browse state with a
// ready pager, skipping the wizard.
func newBrowseApp(t *testing.T, images, targets []string) *App {
	t.Helper()
	a := New(testConfig(), &gallery.SyncService{}, nil, "src", targets)
	if a.state != stateLoading {
		t.Fatalf("state = %s, want %s", a.state, stateLoading)
	}
	model, _ := a.Update(pagerLoadedMsg{pager: gallery.NewPager(images)})
	a = model.(*App)
	if a.state != stateBrowse {
		t.Fatalf("state = %s, want %s", a.state, stateBrowse)
	}
	return a
}

func TestWizardStatesFromMissingOptions(t *testing.T) {
	a := New(testConfig(), &gallery.SyncService{}, nil, "", nil)
	if a.state != statePickSource {
		t.Fatalf("missing source: state = %s, want %s", a.state, statePickSource)
	}

	a = New(testConfig(), &gallery.SyncService{}, nil, "src", nil)
	if a.state != statePickTarget {
		t.Fatalf("missing targets: state = %s, want %s", a.state, statePickTarget)
	}
}

func TestTargetPickLoopsThroughConfirm(t *testing.T) {
	a := New(testConfig(), &gallery.SyncService{}, nil, "src", nil)

	model, _ := a.dirPicked("/tmp/dest-one")
	a = model.(*App)
	if a.state != stateAskMore {
		t.Fatalf("state = %s, want %s", a.state, stateAskMore)
	}
	if len(a.targets) != 1 || a.targets[0] != "/tmp/dest-one" {
		t.Fatalf("targets = %v", a.targets)
	}

	// "y" returns to the picker for another destination
	model, _ = a.updateAskMore(keyRunes('y'))
	a = model.(*App)
	if a.state != statePickTarget {
		t.Fatalf("after y: state = %s, want %s", a.state, statePickTarget)
	}

	model, _ = a.dirPicked("/tmp/dest-two")
	a = model.(*App)

	// "n" with no pager yet parks the app in loading
	model, _ = a.updateAskMore(keyRunes('n'))
	a = model.(*App)
	if a.state != stateLoading {
		t.Fatalf("after n: state = %s, want %s", a.state, stateLoading)
	}

	model, _ = a.Update(pagerLoadedMsg{pager: gallery.NewPager(nil)})
	a = model.(*App)
	if a.state != stateBrowse {
		t.Fatalf("after scan: state = %s, want %s", a.state, stateBrowse)
	}
}

func TestBrowseNavigationClamps(t *testing.T) {
	a := newBrowseApp(t, []string{"a.jpg", "b.jpg", "c.jpg"}, []string{"/tmp/dest"})

	model, _ := a.Update(keyRunes('l'))
	a = model.(*App)
	if a.pager.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", a.pager.Cursor())
	}

	for i := 0; i < 5; i++ {
		model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
		a = model.(*App)
	}
	if a.pager.Cursor() != 2 {
		t.Fatalf("cursor = %d, want clamp at 2", a.pager.Cursor())
	}

	for i := 0; i < 9; i++ {
		model, _ = a.Update(tea.KeyMsg{Type: tea.KeyLeft})
		a = model.(*App)
	}
	if a.pager.Cursor() != 0 {
		t.Fatalf("cursor = %d, want clamp at 0", a.pager.Cursor())
	}
}

func TestBrowseDestinationCursor(t *testing.T) {
	a := newBrowseApp(t, []string{"a.jpg"}, []string{"/tmp/one", "/tmp/two"})

	model, _ := a.Update(keyRunes('j'))
	a = model.(*App)
	if a.destCursor != 1 {
		t.Fatalf("destCursor = %d, want 1", a.destCursor)
	}
	model, _ = a.Update(keyRunes('j'))
	a = model.(*App)
	if a.destCursor != 1 {
		t.Fatalf("destCursor = %d, want clamp at 1", a.destCursor)
	}
	model, _ = a.Update(keyRunes('k'))
	a = model.(*App)
	if a.destCursor != 0 {
		t.Fatalf("destCursor = %d, want 0", a.destCursor)
	}
}

func TestWindowCountBounds(t *testing.T) {
	a := newBrowseApp(t, []string{"a", "b", "c"}, []string{"/tmp/dest"})

	for i := 0; i < 20; i++ {
		model, _ := a.Update(keyRunes('+'))
		a = model.(*App)
	}
	if a.windowCount != config.MaxWindowCount {
		t.Fatalf("windowCount = %d, want %d", a.windowCount, config.MaxWindowCount)
	}
	for i := 0; i < 20; i++ {
		model, _ := a.Update(keyRunes('-'))
		a = model.(*App)
	}
	if a.windowCount != config.MinWindowCount {
		t.Fatalf("windowCount = %d, want %d", a.windowCount, config.MinWindowCount)
	}
}

func TestPreviewRowsBounds(t *testing.T) {
	a := newBrowseApp(t, []string{"a"}, []string{"/tmp/dest"})

	for i := 0; i < 40; i++ {
		model, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlUp})
		a = model.(*App)
	}
	if a.previewRows != config.MaxPreviewRows {
		t.Fatalf("previewRows = %d, want %d", a.previewRows, config.MaxPreviewRows)
	}
	for i := 0; i < 40; i++ {
		model, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlDown})
		a = model.(*App)
	}
	if a.previewRows != config.MinPreviewRows {
		t.Fatalf("previewRows = %d, want %d", a.previewRows, config.MinPreviewRows)
	}
}

func TestCopyActionAndPresenceRefresh(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	img := filepath.Join(src, "a.jpg")
	if err := os.WriteFile(img, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := newBrowseApp(t, []string{img}, []string{dst})

	model, cmd := a.Update(keyRunes('c'))
	a = model.(*App)
	if cmd == nil {
		t.Fatal("copy key should return a command")
	}
	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	if !ok {
		t.Fatalf("expected actionDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("copy failed: %v", done.err)
	}
	if _, err := os.Stat(filepath.Join(dst, "a.jpg")); err != nil {
		t.Fatalf("destination missing the copy: %v", err)
	}

	// completion triggers the presence refresh
	model, refresh := a.Update(done)
	a = model.(*App)
	if refresh == nil {
		t.Fatal("action completion should schedule a refresh")
	}
	pres, ok := refresh().(presenceMsg)
	if !ok {
		t.Fatal("refresh should produce a presence snapshot")
	}
	if !pres[img][dst] {
		t.Fatal("presence should report the copied file")
	}
	model, _ = a.Update(pres)
	a = model.(*App)

	// delete brings it back to absent
	model, cmd = a.Update(keyRunes('d'))
	a = model.(*App)
	done = cmd().(actionDoneMsg)
	if done.err != nil {
		t.Fatalf("delete failed: %v", done.err)
	}
	if _, err := os.Stat(filepath.Join(dst, "a.jpg")); !os.IsNotExist(err) {
		t.Fatalf("destination should be empty again, err = %v", err)
	}
}

func TestBrowseQuit(t *testing.T) {
	a := newBrowseApp(t, nil, []string{"/tmp/dest"})
	_, cmd := a.Update(keyRunes('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit should produce tea.QuitMsg")
	}
}

func TestViewBrowseEmptySet(t *testing.T) {
	a := newBrowseApp(t, nil, []string{"/tmp/dest"})
	view := a.View()
	if view == "" {
		t.Fatal("empty set still renders a view")
	}
	if got := a.pager.Progress(); got != 0 {
		t.Fatalf("empty set progress = %v, want 0", got)
	}
}

func TestLoadingStateQuitsAndShowsErrors(t *testing.T) {
	a := New(testConfig(), &gallery.SyncService{}, nil, "src", []string{"/tmp/dest"})
	if a.state != stateLoading {
		t.Fatalf("state = %s, want %s", a.state, stateLoading)
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c while loading should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c while loading should produce tea.QuitMsg")
	}

	model, _ := a.Update(errMsg{os.ErrPermission})
	a = model.(*App)
	if !strings.Contains(a.View(), os.ErrPermission.Error()) {
		t.Fatalf("scan error not visible while loading; view = %q", a.View())
	}

	_, cmd = a.Update(keyRunes('q'))
	if cmd == nil {
		t.Fatal("q after a scan error should still quit")
	}
}

func TestErrMsgSurfacesInStatus(t *testing.T) {
	a := newBrowseApp(t, []string{"a"}, []string{"/tmp/dest"})
	model, _ := a.Update(errMsg{os.ErrPermission})
	a = model.(*App)
	if a.status == "" {
		t.Fatal("errors must land in the status line")
	}
}
