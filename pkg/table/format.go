package table

import (
	"fmt"
	"strings"
)

// formatAbbrev expands a zone FORMAT column into a concrete abbreviation.
// Three shapes occur in the database: a `STD/DST` alternate pair chosen by
// whether saving is in effect, a `%s` placeholder filled from rule letters,
// and a `%z` placeholder rendered as the numeric total offset the way zic
// does it.
func formatAbbrev(format string, utcOffset, dstOffset int64, letters string) string {
	if idx := strings.IndexByte(format, '/'); idx >= 0 {
		if dstOffset != 0 {
			return format[idx+1:]
		}
		return format[:idx]
	}
	if strings.Contains(format, "%s") {
		return strings.ReplaceAll(format, "%s", letters)
	}
	if strings.Contains(format, "%z") {
		return strings.ReplaceAll(format, "%z", numericAbbrev(utcOffset+dstOffset))
	}
	return format
}

// numericAbbrev renders an offset as zic's %z does: +-hh, +-hhmm, or
// +-hhmmss, using as few fields as the value needs.
func numericAbbrev(offset int64) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60
	seconds := offset % 60

	switch {
	case seconds != 0:
		return fmt.Sprintf("%s%02d%02d%02d", sign, hours, minutes, seconds)
	case minutes != 0:
		return fmt.Sprintf("%s%02d%02d", sign, hours, minutes)
	default:
		return fmt.Sprintf("%s%02d", sign, hours)
	}
}
