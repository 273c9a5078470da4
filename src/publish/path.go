package publish

import (
	"strings"

	"github.com/google/uuid"
)

// SlugifyTitle turns a compilation title into a filename-safe slug:
// lowercased, whitespace to hyphens, everything else non-alphanumeric
// stripped, runs of hyphens collapsed.
func SlugifyTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DeriveStoragePath builds the object path for a published PDF. The
// path is stable for a given anchor set and title, so re-publishing
// overwrites the same object. A title that slugifies to nothing falls
// back to the compilation id.
func DeriveStoragePath(slugs []string, title string, compID uuid.UUID) string {
	filename := SlugifyTitle(title)
	if filename == "" {
		filename = compID.String()
	}

	segments := make([]string, 0, len(slugs)+1)
	segments = append(segments, slugs...)
	segments = append(segments, filename+".pdf")
	return strings.Join(segments, "/")
}
