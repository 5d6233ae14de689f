package preview

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureDate reads the capture timestamp from the image's EXIF data.
// Images without EXIF return an error; callers treat that as "no date"
// rather than a failure.
func CaptureDate(path string) (time.Time, error) {
	f, err := os.Open(path)
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
