// Package organizer copies every photo in a flat input directory into the
// dated output tree and reports what happened.
//
// A run never stops on a bad file: each failure is recorded and printed at
// the end. Only an unlistable input directory aborts the run.
package organizer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"organize-photos/internal/photo"
)

const progressLabel = "Organizing photos"

// Organizer drives one batch over an input directory.
type Organizer struct {
	Fs    afero.Fs
	Mover *photo.Mover
	Sink  Sink
	Log   logrus.FieldLogger
}

// New wires an Organizer and its Mover over fs. A nil log discards diagnostics.
func New(fs afero.Fs, sink Sink, log logrus.FieldLogger) *Organizer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Organizer{
		Fs:    fs,
		Mover: photo.NewMover(fs, log),
		Sink:  sink,
		Log:   log,
	}
}

// Run processes the immediate entries of inputDir in name order. Directories
// and non-photo files count as failures; they never abort the batch. The
// returned error is non-nil only when inputDir cannot be listed, in which
// case it is a *photo.Error of KindInputDirNotFound.
func (o *Organizer) Run(inputDir, outputDir string) (*Result, error) {
	o.Sink.Println("Source dir: " + inputDir)
	o.Sink.Println("Output dir: " + outputDir)

	entries, err := afero.ReadDir(o.Fs, inputDir)
	if err != nil {
		return nil, &photo.Error{
			Kind: photo.KindInputDirNotFound,
			Path: inputDir,
			Msg:  "Cannot list input directory " + inputDir,
			Err:  err,
		}
	}

	res := newResult()
	o.Sink.StartProgress(progressLabel, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		o.processEntry(res, filepath.Join(inputDir, name), name, outputDir)
		o.Sink.Advance(name)
	}
	o.Sink.FinishProgress()

	o.report(res)
	return res, nil
}

func (o *Organizer) processEntry(res *Result, src, name, outputDir string) {
	log := o.Log.WithField("file", src)

	dst, err := o.Mover.Move(src, outputDir)
	if err == nil {
		res.addCopied()
		log.WithField("dest", dst).Debug("Copied")
		return
	}

	res.addError(name, err)
	log = log.WithField("kind", photo.KindOf(err).String())
	switch photo.KindOf(err) {
	case photo.KindPatternMismatch, photo.KindInvalidDate:
		log.Debug("Skipped: name carries no usable date")
	case photo.KindDirectoryCreateFailed, photo.KindCopyFailed:
		log.WithError(err).Info("Copy failed")
	default:
		log.WithError(err).Warn("Unclassified failure")
	}
}

// report prints accumulated errors followed by the two totals.
func (o *Organizer) report(res *Result) {
	for _, msg := range res.Messages() {
		o.Sink.Errorln(msg)
	}
	o.Sink.Println(fmt.Sprintf("Total photos copied: %d", res.Copied))
	o.Sink.Println(fmt.Sprintf("Total photos failed: %d", res.Failed))
}
