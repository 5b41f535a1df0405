package errors

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLedger() *SkipLedger {
	l := NewSkipLedger()
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestSkipLedgerRecord(t *testing.T) {
	l := fixedLedger()
	l.Record("C1", StageLocate, stderrors.New("code not found"))
	l.RecordFile("C2", StageRender, "C2_Hangtag.pdf", stderrors.New("disk full"))
	l.Record("C1", StageRange, nil)

	require.Equal(t, 3, l.Len())
	recs := l.Records()
	assert.Equal(t, "C1", recs[0].Code)
	assert.Equal(t, StageLocate, recs[0].Stage)
	assert.Equal(t, "code not found", recs[0].Message)
	assert.Equal(t, "C2_Hangtag.pdf", recs[1].File)
	assert.Empty(t, recs[2].Message)

	assert.Len(t, l.ForCode("C1"), 2)
	assert.Empty(t, l.ForCode("C9"))

	// Records returns a copy.
	recs[0].Code = "changed"
	assert.Equal(t, "C1", l.Records()[0].Code)
}

func TestSkipLedgerSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output_pdfs")
	l := fixedLedger()
	l.Record("C1", StageLocate, stderrors.New("code not found"))

	path, err := l.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, LedgerFileName), path)

	recs, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "C1", recs[0].Code)
	assert.True(t, recs[0].Timestamp.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestSkipLedgerEmptyRemovesStaleFile(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, LedgerFileName)
	require.NoError(t, os.WriteFile(stale, []byte("[]"), 0644))

	path, err := NewSkipLedger().Save(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoFileExists(t, stale)

	recs, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LedgerFileName), []byte("{"), 0644))
	_, err := Load(dir)
	assert.Error(t, err)
}
