package photo

import (
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/sirupsen/logrus"
)

// captureDate returns the EXIF DateTimeOriginal of path.
func (m *Mover) captureDate(path string) (time.Time, error) {
	f, err := m.Fs.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}

// checkCaptureDate warns when the camera recorded a different day than the
// filename claims. The filename always decides placement.
func (m *Mover) checkCaptureDate(path string, date Date) {
	log := m.Log.WithFields(logrus.Fields{
		"file":          path,
		"filename_date": date.String(),
	})

	t, err := m.captureDate(path)
	if err != nil {
		log.WithError(err).Debug("No EXIF capture date")
		return
	}
	if t.Year() == date.Year && t.Month() == date.Month && t.Day() == date.Day {
		return
	}
	log.WithField("exif_date", t.Format("2006-01-02")).Warn("EXIF capture date differs from filename date")
}
