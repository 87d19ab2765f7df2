package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/taskpad/pkg/config"
	"github.com/vanderheijden86/taskpad/pkg/store"
	"github.com/vanderheijden86/taskpad/pkg/task"
	"github.com/vanderheijden86/taskpad/pkg/ui"
	"github.com/vanderheijden86/taskpad/pkg/version"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	storeDir := flag.String("store", "", "Data directory (default: XDG data dir)")
	backend := flag.String("backend", "", "Storage backend: file or sqlite (default: from config)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: tp [options]")
		fmt.Println("\nA terminal task list manager.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("tp %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		// Non-fatal: continue with defaults
		cfg = config.DefaultConfig()
	}
	if *storeDir != "" {
		cfg.Store.Dir = *storeDir
	}
	if *backend != "" {
		cfg.Store.Backend = *backend
	}

	st, snapshotPath, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	// First run: seed two sample tasks. Never touches an existing snapshot.
	if err := store.EnsureSeeded(st, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding store: %v\n", err)
		os.Exit(1)
	}

	mgr, err := task.NewManager(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	// Theme preference is persisted independently of the task snapshot and
	// applied before first render. Config may override it.
	theme := ui.ThemeLight
	if found, err := st.Load(store.KeyTheme, &theme); err != nil || !found {
		theme = ui.ThemeLight
	}
	if cfg.UI.Theme != "" {
		theme = cfg.UI.Theme
	}

	m := ui.NewModel(mgr, st, theme, snapshotPath)
	defer m.Stop()

	if err := runTUIProgram(m); err != nil {
		fmt.Printf("Error running taskpad: %v\n", err)
		os.Exit(1)
	}
}

// openStore constructs the configured backend. The returned snapshotPath
// is non-empty only for the file backend, where live reload is possible.
func openStore(cfg config.Config) (store.Store, string, error) {
	dir := cfg.ResolveDataDir()
	if dir == "" {
		return nil, "", fmt.Errorf("cannot determine data directory")
	}

	switch cfg.Store.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("creating data directory: %w", err)
		}
		st, err := store.NewSQLiteStore(filepath.Join(dir, "taskpad.db"))
		if err != nil {
			return nil, "", err
		}
		return st, "", nil

	case config.BackendFile, "":
		st, err := store.NewFileStore(dir)
		if err != nil {
			return nil, "", err
		}
		return st, st.Path(store.KeyTasks), nil

	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", cfg.Store.Backend)
	}
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set TP_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("TP_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
