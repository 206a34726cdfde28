// Package photo parses capture dates out of camera filenames and copies
// photos into a year/month/day directory tree.
//
// Only one naming scheme is recognized:
//
//	IMG_20170112_0001.jpg  ->  {root}/2017/January/12/IMG_20170112_0001.jpg
package photo

import (
	"path/filepath"
	"regexp"
	"time"
)

// filenamePattern matches the basename of a photo. The leading anchor keeps
// IMG_ at the start of the name, and the tail may not cross a path separator.
var filenamePattern = regexp.MustCompile(`^IMG_(\d{8})_[^/]*\.jpg$`)

// dateLayout is YYYYMMDD in Go's reference time.
const dateLayout = "20060102"

// Date is a calendar day parsed from a filename.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// ParseDate extracts the capture date from the basename of path.
// It fails with KindPatternMismatch when the name is not IMG_YYYYMMDD_*.jpg
// and with KindInvalidDate when the digits are not a real calendar day.
func ParseDate(path string) (Date, error) {
	m := filenamePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return Date{}, &Error{Kind: KindPatternMismatch, Path: path, Msg: "Pattern not recognized"}
	}
	digits := m[1]

	// time.Parse rejects month 13, day 32 and Feb 30; year 0 is rejected
	// separately since the calendar starts at year 1.
	t, err := time.Parse(dateLayout, digits)
	if err != nil || t.Year() < 1 {
		return Date{}, &Error{Kind: KindInvalidDate, Path: path, Msg: "Failed to parse date string: " + digits}
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}
