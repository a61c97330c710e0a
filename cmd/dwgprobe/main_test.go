package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/dwgtest/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/vmihailenco/msgpack.v2"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	require.NoError(t, app.Run(append([]string{"dwgprobe"}, args...)))

	return out.String()
}

func writeSample(t *testing.T, dir, name string, ver format.Version) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, sample.New(t, ver, 0).File(t), 0o600))

	return path
}

func TestInfo(t *testing.T) {
	path := writeSample(t, t.TempDir(), "plan.dwg", format.R2004)

	out := run(t, "info", "--verify", "--retention", "lz4", path)
	assert.Contains(t, out, "R2004 (maintenance 0)")
	assert.Contains(t, out, "3 in 2 blocks")
	assert.Contains(t, out, "2000-01-01T00:00:00Z")
	assert.Contains(t, out, format.NameObjects)
	assert.Regexp(t, `metric:\s+true`, out)
}

func TestInfo_Legacy(t *testing.T) {
	path := writeSample(t, t.TempDir(), "old.dwg", format.R14)

	out := run(t, "--debug", "info", "--raw-text", path)
	assert.Contains(t, out, "R14")
	assert.Contains(t, out, format.NameHeader)
	assert.Regexp(t, `preview:\s+true`, out)
}

func TestInfo_DebugLog(t *testing.T) {
	path := writeSample(t, t.TempDir(), "plan.dwg", format.R2004)

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	require.NoError(t, app.Run([]string{"dwgprobe", "--debug", "info", path}))

	logs := errOut.String()
	assert.Contains(t, logs, "level=debug")
	assert.Contains(t, logs, "cmd=info")
	assert.Contains(t, logs, `msg="section assembled"`)
	assert.Contains(t, logs, `name="`+format.NameObjects+`"`)
	assert.NotContains(t, out.String(), "level=debug")
}

func TestInfo_MessagePack(t *testing.T) {
	path := writeSample(t, t.TempDir(), "plan.dwg", format.R2018)

	out := run(t, "info", "--msgpack", path)

	var s summary
	require.NoError(t, msgpack.Unmarshal([]byte(out), &s))
	require.Equal(t, path, s.Path)
	require.Equal(t, "R2018", s.Version)
	require.Equal(t, uint16(sample.CodePage), s.CodePage)
	require.Equal(t, []string{sample.ClassDXFName}, s.Classes)
	require.Equal(t, 3, s.Handles)
	require.Equal(t, int16(sample.LUnits), s.LUnits)
	require.True(t, s.Metric)
	require.Len(t, s.Sections, 6)

	var objects sectionSummary
	for _, sec := range s.Sections {
		if sec.Name == format.NameObjects {
			objects = sec
		}
	}
	require.Equal(t, len("AcDbObject")*sample.ObjectsRepeat, objects.Size)
	require.Equal(t, uint32(2), objects.Pages)
	require.True(t, objects.Compressed)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	a := writeSample(t, dir, "a.dwg", format.R2004)
	writeSample(t, dir, "nested/b.DWG", format.R2004)
	c := writeSample(t, dir, "nested/deeper/c.dwg", format.R14)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("AC1018"), 0o600))
	broken := filepath.Join(dir, "broken.dwg")
	require.NoError(t, os.WriteFile(broken, []byte("AC1018"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.dwg"), []byte("AC"), 0o600))

	db := filepath.Join(t.TempDir(), "index.db")
	out := run(t, "scan", "--decode", "--index", db, dir)
	assert.Regexp(t, `R14\s+1`, out)
	assert.Regexp(t, `R2004\s+3`, out)
	assert.Regexp(t, `unreadable\s+1`, out)
	assert.Regexp(t, `total\s+5`, out)
	assert.Regexp(t, `failed\s+2`, out)

	idx, err := openIndex(db)
	require.NoError(t, err)
	defer idx.Close()

	e, ok, err := idx.Get(a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "R2004", e.Version)
	require.Empty(t, e.Error)
	require.Positive(t, e.Size)

	e, ok, err = idx.Get(c)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "R14", e.Version)

	e, ok, err = idx.Get(broken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "R2004", e.Version)
	require.NotEmpty(t, e.Error)

	_, ok, err = idx.Get(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.False(t, ok)

	var paths []string
	require.NoError(t, idx.ForEach(func(path string, _ indexEntry) error {
		paths = append(paths, path)
		return nil
	}))
	require.Len(t, paths, 5)
	require.IsIncreasing(t, paths)
}

func TestScanFile_Missing(t *testing.T) {
	e := scanFile(filepath.Join(t.TempDir(), "gone.dwg"), false, nil)
	require.Equal(t, unreadable, e.Version)
	require.NotEmpty(t, e.Error)
}

func TestFields(t *testing.T) {
	out := run(t, "fields", "AC1015")
	assert.Contains(t, out, "DIMASO")
	assert.Contains(t, out, "reserved")
	assert.NotContains(t, out, "REQUIREDVERSIONS")

	out = run(t, "fields", "AC1032")
	assert.Contains(t, out, "REQUIREDVERSIONS")
}

func TestVersionRank(t *testing.T) {
	require.Less(t, versionRank("R13"), versionRank("R2000"))
	require.Less(t, versionRank("R2018"), versionRank(unreadable))
}
