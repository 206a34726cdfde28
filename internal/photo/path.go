package photo

import (
	"path/filepath"
	"strconv"
)

// DestinationDir returns the directory a photo taken on d belongs in:
//
//	{root}/{year}/{month name}/{day}
//
// The month is its full English name and the day is not zero padded,
// e.g. /out/2017/January/12.
func DestinationDir(d Date, root string) string {
	return filepath.Join(root, strconv.Itoa(d.Year), d.Month.String(), strconv.Itoa(d.Day))
}
