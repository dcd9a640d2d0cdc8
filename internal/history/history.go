// Package history keeps a capped, persisted record of accepted command lines.
package history

import (
	"bufio"
	"os"
	"sync"
)

const defaultMaxEntries = 1000

type History struct {
	mu      sync.Mutex
	file    string
	max     int
	entries []string
}

// New loads any existing history from file. A missing file yields an empty
// history; any other read error is reported.
func New(file string) (*History, error) {
	h := &History{file: file, max: defaultMaxEntries}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

// Append records one line and persists the updated history. Persistence
// failures are swallowed; losing history must never break the interpreter.
func (h *History) Append(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	_ = h.flush()
}

// All returns a copy of the recorded lines, oldest first.
func (h *History) All() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string{}, h.entries...)
}

func (h *History) load() error {
	f, err := os.Open(h.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.entries = append(h.entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return nil
}

func (h *History) flush() error {
	f, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range h.entries {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
