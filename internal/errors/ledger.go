// Package errors records per-code skips during an export run.
package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LedgerFileName is written into the output root when a run skipped anything.
const LedgerFileName = "skipped.json"

// SkipStage is the step of the run at which a code or file was skipped.
type SkipStage string

const (
	StageLocate   SkipStage = "locate"   // code not found in the reference document
	StageRange    SkipStage = "range"    // requested range invalid for the code
	StageRaster   SkipStage = "raster"   // page could not be rasterized or cropped
	StageRender   SkipStage = "render"   // sheet composition or write failed
	StageValidate SkipStage = "validate" // written sheet failed validation
)

// SkipRecord is one entry of the ledger.
type SkipRecord struct {
	Code      string    `json:"code"`
	Stage     SkipStage `json:"stage"`
	Message   string    `json:"message"`
	File      string    `json:"file,omitempty"` // output file, when the failure is range-scoped
	Timestamp time.Time `json:"timestamp"`
}

// SkipLedger collects skip records in the order they happen.
type SkipLedger struct {
	mu      sync.RWMutex
	records []SkipRecord
	now     func() time.Time
}

// NewSkipLedger creates an empty ledger.
func NewSkipLedger() *SkipLedger {
	return &SkipLedger{now: time.Now}
}

// Record adds a skip for code.
func (l *SkipLedger) Record(code string, stage SkipStage, err error) {
	l.RecordFile(code, stage, "", err)
}

// RecordFile adds a skip for one output file of code.
func (l *SkipLedger) RecordFile(code string, stage SkipStage, file string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, SkipRecord{
		Code:      code,
		Stage:     stage,
		Message:   msg,
		File:      file,
		Timestamp: l.now(),
	})
}

// Len returns the number of records.
func (l *SkipLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Records returns a copy of all records.
func (l *SkipLedger) Records() []SkipRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]SkipRecord(nil), l.records...)
}

// ForCode returns the records of one code.
func (l *SkipLedger) ForCode(code string) []SkipRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []SkipRecord
	for _, r := range l.records {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out
}

// Save writes the ledger to dir/skipped.json. An empty ledger removes a stale
// file from a previous run instead. It returns the path written, or "".
func (l *SkipLedger) Save(dir string) (string, error) {
	path := filepath.Join(dir, LedgerFileName)
	records := l.Records()

	if len(records) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to remove stale ledger: %w", err)
		}
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal skip records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write skip ledger: %w", err)
	}
	return path, nil
}

// Load reads a ledger previously written by Save.
func Load(dir string) ([]SkipRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, LedgerFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read skip ledger: %w", err)
	}

	var records []SkipRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skip ledger: %w", err)
	}
	return records, nil
}
