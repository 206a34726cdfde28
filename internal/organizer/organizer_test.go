package organizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organize-photos/internal/photo"
)

// recordingSink captures everything the organizer emits, in order.
type recordingSink struct {
	events   []string
	lines    []string
	errLines []string
	advanced []string
	total    int
}

func (s *recordingSink) Println(line string) {
	s.events = append(s.events, "out:"+line)
	s.lines = append(s.lines, line)
}

func (s *recordingSink) Errorln(line string) {
	s.events = append(s.events, "err:"+line)
	s.errLines = append(s.errLines, line)
}

func (s *recordingSink) StartProgress(label string, total int) {
	s.events = append(s.events, "start:"+label)
	s.total = total
}

func (s *recordingSink) Advance(item string) {
	s.events = append(s.events, "advance:"+item)
	s.advanced = append(s.advanced, item)
}

func (s *recordingSink) FinishProgress() {
	s.events = append(s.events, "finish")
}

func touch(t *testing.T, fs afero.Fs, dir, name string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(name), 0o644))
}

func TestRun_EndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "IMG_20170112_0001.jpg")
	touch(t, fs, "/in", "IMG_20170112_0002.jpg")
	touch(t, fs, "/in", "notes.txt")

	sink := &recordingSink{}
	res, err := New(fs, sink, nil).Run("/in", "/out")
	require.NoError(t, err)

	for _, name := range []string{"IMG_20170112_0001.jpg", "IMG_20170112_0002.jpg"} {
		data, err := afero.ReadFile(fs, filepath.Join("/out/2017/January/12", name))
		require.NoError(t, err)
		assert.Equal(t, name, string(data))
	}

	assert.Equal(t, 2, res.Copied)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.ByKind[photo.KindPatternMismatch])
	require.Len(t, sink.errLines, 1)
	assert.Equal(t, "Error copying file: notes.txt - Pattern not recognized", sink.errLines[0])
	assert.Equal(t, []string{
		"Source dir: /in",
		"Output dir: /out",
		"Total photos copied: 2",
		"Total photos failed: 1",
	}, sink.lines)
}

func TestRun_OutputOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "IMG_20170112_0001.jpg")
	touch(t, fs, "/in", "b.txt")

	sink := &recordingSink{}
	_, err := New(fs, sink, nil).Run("/in", "/out")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"out:Source dir: /in",
		"out:Output dir: /out",
		"start:Organizing photos",
		"advance:IMG_20170112_0001.jpg",
		"advance:b.txt",
		"finish",
		"err:Error copying file: b.txt - Pattern not recognized",
		"out:Total photos copied: 1",
		"out:Total photos failed: 1",
	}, sink.events)
	assert.Equal(t, 2, sink.total)
}

func TestRun_ErrorsKeepProcessingOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "a.txt")
	touch(t, fs, "/in", "IMG_20170230_0001.jpg")
	touch(t, fs, "/in", "c.png")

	sink := &recordingSink{}
	res, err := New(fs, sink, nil).Run("/in", "/out")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Copied)
	assert.Equal(t, 3, res.Failed)
	assert.Equal(t, []string{
		"Error copying file: IMG_20170230_0001.jpg - Failed to parse date string: 20170230",
		"Error copying file: a.txt - Pattern not recognized",
		"Error copying file: c.png - Pattern not recognized",
	}, res.Messages())
	assert.Equal(t, res.Messages(), sink.errLines)
	assert.Equal(t, 1, res.ByKind[photo.KindInvalidDate])
	assert.Equal(t, 2, res.ByKind[photo.KindPatternMismatch])
}

func TestRun_InputInsideOutputTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	leaf := "/out/2017/January/12"
	touch(t, fs, leaf, "IMG_20170112_0001.jpg")

	res, err := New(fs, &recordingSink{}, nil).Run(leaf, "/out")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Copied)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.ByKind[photo.KindCopyFailed])

	got, err := afero.ReadFile(fs, filepath.Join(leaf, "IMG_20170112_0001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "IMG_20170112_0001.jpg", string(got), "photo is not truncated")
}

func TestRun_DirectoryEntriesDoNotCrash(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "IMG_20170112_0001.jpg")
	require.NoError(t, fs.MkdirAll("/in/holiday", 0o755))
	require.NoError(t, fs.MkdirAll("/in/IMG_20170112_album.jpg", 0o755))
	touch(t, fs, "/in/holiday", "IMG_20180101_0001.jpg")

	res, err := New(fs, &recordingSink{}, nil).Run("/in", "/out")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Copied)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, 1, res.ByKind[photo.KindCopyFailed])
	assert.Equal(t, 1, res.ByKind[photo.KindPatternMismatch])

	exists, err := afero.DirExists(fs, "/out/2018")
	require.NoError(t, err)
	assert.False(t, exists, "subdirectories are not scanned")
}

func TestRun_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "IMG_20170112_0001.jpg")
	touch(t, fs, "/in", "IMG_20181224_0002.jpg")

	for i := 0; i < 2; i++ {
		res, err := New(fs, &recordingSink{}, nil).Run("/in", "/out")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Copied, "run %d", i+1)
		assert.Zero(t, res.Failed, "run %d", i+1)
	}

	var files []string
	require.NoError(t, afero.Walk(fs, "/out", func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, filepath.ToSlash(path))
		}
		return err
	}))
	assert.ElementsMatch(t, []string{
		"/out/2017/January/12/IMG_20170112_0001.jpg",
		"/out/2018/December/24/IMG_20181224_0002.jpg",
	}, files)
}

func TestRun_EmptyInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/in", 0o755))

	sink := &recordingSink{}
	res, err := New(fs, sink, nil).Run("/in", "/out")
	require.NoError(t, err)
	assert.Zero(t, res.Copied)
	assert.Zero(t, res.Failed)
	assert.Equal(t, "Total photos failed: 0", sink.lines[len(sink.lines)-1])
}

func TestRun_MissingInputDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	sink := &recordingSink{}
	res, err := New(fs, sink, nil).Run("/missing", "/out")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, photo.ErrInputDirNotFound)
	assert.True(t, strings.Contains(err.Error(), "/missing"))

	exists, _ := afero.Exists(fs, "/out")
	assert.False(t, exists)
	assert.NotContains(t, sink.events, "start:Organizing photos")
}
