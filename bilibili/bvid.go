package bilibili

import (
	"regexp"
	"strings"
)

var bvidPattern = regexp.MustCompile(`BV[a-zA-Z0-9]+`)

// BVID is the public identifier of a video, e.g. "BV1xx411c7mD".
type BVID string

func (b BVID) String() string {
	return string(b)
}

// ExtractBVID returns the first identifier found in rawURL before any query string.
func ExtractBVID(rawURL string) (BVID, error) {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		rawURL = rawURL[:i]
	}

	match := bvidPattern.FindString(rawURL)
	if match == "" {
		return "", &Error{Kind: NotFound}
	}

	return BVID(match), nil
}
