// ===== internal/monitor/monitor.go =====
package monitor

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Monitor re-runs the processing pipeline whenever the watched input
// file is written to.
type Monitor struct {
	path    string
	run     func() error
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// New creates a monitor for the file at path. run is invoked on each
// write event.
func New(path string, run func() error) *Monitor {
	return &Monitor{
		path:   path,
		run:    run,
		stopCh: make(chan struct{}),
	}
}

// Start begins watching the input file
func (m *Monitor) Start() error {
	var err error
	m.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := m.watcher.Add(m.path); err != nil {
		m.watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", m.path, err)
	}

	go m.watchFile()
	return nil
}

// Stop stops watching
func (m *Monitor) Stop() {
	close(m.stopCh)
	m.watcher.Close()
}

func (m *Monitor) watchFile() {
	absPath, _ := filepath.Abs(m.path)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}

			// Use absolute paths for comparison
			absEventPath, _ := filepath.Abs(event.Name)
			if absEventPath != absPath {
				continue
			}

			log.Printf("File modified: %s", event.Name)
			if err := m.run(); err != nil {
				log.Printf("Error reprocessing %s: %v", m.path, err)
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-m.stopCh:
			return
		}
	}
}
