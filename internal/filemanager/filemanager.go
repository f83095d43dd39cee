// Package filemanager reads and writes text, JSON and CSV files under one
// base directory.
//
// Every name is resolved relative to the base directory and must stay inside
// it; "../x" or an absolute path is rejected with ErrOutsideBase.
package filemanager

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrOutsideBase = errors.New("filemanager: path escapes base directory")
	ErrNoRecords   = errors.New("filemanager: no records to write")
)

// Manager performs file operations relative to a base directory.
type Manager struct {
	base string
}

func New(base string) *Manager {
	if base == "" {
		base = "."
	}
	return &Manager{base: base}
}

func (m *Manager) path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, name)
	}
	return filepath.Join(m.base, name), nil
}

func (m *Manager) ReadText(name string) (string, error) {
	p, err := m.path(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("filemanager: reading %s: %w", name, err)
	}
	return string(b), nil
}

func (m *Manager) WriteText(name, content string) error {
	p, err := m.path(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("filemanager: writing %s: %w", name, err)
	}
	return nil
}

// AppendText appends content, creating the file if needed.
func (m *Manager) AppendText(name, content string) error {
	p, err := m.path(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("filemanager: opening %s: %w", name, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("filemanager: appending to %s: %w", name, err)
	}
	return f.Close()
}

// ReadJSON decodes the file into v.
func (m *Manager) ReadJSON(name string, v any) error {
	p, err := m.path(name)
	if err != nil {
		return err
	}
	f, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("filemanager: opening %s: %w", name, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("filemanager: decoding %s: %w", name, err)
	}
	return nil
}

// WriteJSON writes v indented by two spaces.
func (m *Manager) WriteJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("filemanager: encoding %s: %w", name, err)
	}
	return m.WriteText(name, string(b)+"\n")
}

// ReadCSV returns one map per data row, keyed by the header row.
func (m *Manager) ReadCSV(name string) ([]map[string]string, error) {
	p, err := m.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("filemanager: opening %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filemanager: reading header of %s: %w", name, err)
	}

	rows := make([]map[string]string, 0)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("filemanager: reading %s: %w", name, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes records with a header row. Without explicit fieldnames the
// first record's keys are used, sorted. Missing values are written empty.
func (m *Manager) WriteCSV(name string, records []map[string]string, fieldnames ...string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	if len(fieldnames) == 0 {
		for k := range records[0] {
			fieldnames = append(fieldnames, k)
		}
		slices.Sort(fieldnames)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(fieldnames); err != nil {
		return fmt.Errorf("filemanager: writing header: %w", err)
	}
	row := make([]string, len(fieldnames))
	for _, rec := range records {
		for i, col := range fieldnames {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("filemanager: writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("filemanager: flushing csv: %w", err)
	}
	return m.WriteText(name, sb.String())
}

// List returns the names of regular files in the base directory, optionally
// only those ending in ext (for example ".txt").
func (m *Manager) List(ext string) ([]string, error) {
	entries, err := os.ReadDir(m.base)
	if err != nil {
		return nil, fmt.Errorf("filemanager: listing %s: %w", m.base, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if ext != "" && !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Exists reports whether name is an existing regular file.
func (m *Manager) Exists(name string) bool {
	p, err := m.path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Delete removes a regular file. It reports false if there was nothing to delete.
func (m *Manager) Delete(name string) (bool, error) {
	if !m.Exists(name) {
		return false, nil
	}
	p, _ := m.path(name)
	if err := os.Remove(p); err != nil {
		return false, fmt.Errorf("filemanager: deleting %s: %w", name, err)
	}
	return true, nil
}
