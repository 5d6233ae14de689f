package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/photopick/internal/config"
	"github.com/jask/photopick/internal/gallery"
	"github.com/jask/photopick/internal/tui"
)

// dirList collects repeated --target flags.
type dirList []string

func (d *dirList) String() string { return fmt.Sprint([]string(*d)) }

func (d *dirList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func main() {
	var (
		source  string
		targets dirList
	)
	flag.StringVar(&source, "source", "", "folder containing the images to sort")
	flag.Var(&targets, "target", "destination folder (repeatable)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// directories given on the command line must exist up front; the
	// ones picked interactively are validated by the picker itself.
	if source != "" {
		mustBeDir(source)
	}
	for _, dir := range targets {
		mustBeDir(dir)
	}

	notify := make(chan string, 32)
	svc := &gallery.SyncService{
		Notify: func(format string, args ...any) {
			select {
			case notify <- fmt.Sprintf(format, args...):
			default:
			}
		},
	}

	p := tea.NewProgram(tui.New(cfg, svc, notify, source, targets), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func mustBeDir(path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	if !info.IsDir() {
		log.Fatalf("%s is not a directory", path)
	}
}
