package zoneinfo

import "fmt"

// ErrorKind classifies the ways a zoneinfo line can fail to parse. Each kind
// maps to one malformed-field class so callers can branch on the failure
// without string matching.
type ErrorKind int

const (
	// ErrFailedYearParse reports a FROM/TO/UNTIL column that is neither a
	// year number nor min/max.
	ErrFailedYearParse ErrorKind = iota
	// ErrFailedMonthParse reports an unrecognised month name.
	ErrFailedMonthParse
	// ErrFailedWeekdayParse reports an unrecognised weekday name.
	ErrFailedWeekdayParse
	// ErrInvalidLineType reports a line that is none of the known kinds.
	ErrInvalidLineType
	// ErrTypeColumnNotHyphen reports a rule TYPE column holding anything but
	// a hyphen.
	ErrTypeColumnNotHyphen
	// ErrInvalidSaving reports an unparseable RULES/SAVE column.
	ErrInvalidSaving
	// ErrInvalidDaySpec reports an unparseable ON column.
	ErrInvalidDaySpec
	// ErrInvalidTimeSpec reports an unparseable time value.
	ErrInvalidTimeSpec
	// ErrNotRuleLine reports a line that started like a rule but ended early.
	ErrNotRuleLine
	// ErrNotZoneLine reports a line that started like a zone but ended early.
	ErrNotZoneLine
	// ErrNotLinkLine reports a line that started like a link but ended early.
	ErrNotLinkLine
)

// Error describes a single malformed zoneinfo line field.
type Error struct {
	Kind  ErrorKind
	Input string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrFailedYearParse:
		return fmt.Sprintf("zoneinfo: failed to parse as a year value: %q", e.Input)
	case ErrFailedMonthParse:
		return fmt.Sprintf("zoneinfo: failed to parse as a month value: %q", e.Input)
	case ErrFailedWeekdayParse:
		return fmt.Sprintf("zoneinfo: failed to parse as a weekday value: %q", e.Input)
	case ErrInvalidLineType:
		return fmt.Sprintf("zoneinfo: line with invalid format: %q", e.Input)
	case ErrTypeColumnNotHyphen:
		return fmt.Sprintf("zoneinfo: TYPE column is not a hyphen but has the value: %q", e.Input)
	case ErrInvalidSaving:
		return fmt.Sprintf("zoneinfo: failed to parse RULES column: %q", e.Input)
	case ErrInvalidDaySpec:
		return fmt.Sprintf("zoneinfo: invalid day specification: %q", e.Input)
	case ErrInvalidTimeSpec:
		return fmt.Sprintf("zoneinfo: invalid time: %q", e.Input)
	case ErrNotRuleLine:
		return "zoneinfo: failed to parse line as a rule"
	case ErrNotZoneLine:
		return "zoneinfo: failed to parse line as a zone"
	case ErrNotLinkLine:
		return "zoneinfo: failed to parse line as a link"
	default:
		return fmt.Sprintf("zoneinfo: parse error %d: %q", int(e.Kind), e.Input)
	}
}

// Is lets errors.Is match two parse errors by kind alone, so callers can use
// sentinel-style comparisons without caring about the offending input.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && (other.Input == "" || other.Input == e.Input)
}

func parseErr(kind ErrorKind, input string) *Error {
	return &Error{Kind: kind, Input: input}
}
