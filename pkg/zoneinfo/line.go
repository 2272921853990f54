package zoneinfo

import (
	"strconv"
	"strings"
)

// Year is a FROM/TO/UNTIL column value: a concrete year number, or the
// open-ended minimum/maximum markers.
type Year struct {
	Kind   YearKind
	Number int64
}

// YearKind discriminates the Year forms.
type YearKind int

const (
	// YearNumber is a specific year.
	YearNumber YearKind = iota
	// YearMinimum is the `min`/`minimum` marker.
	YearMinimum
	// YearMaximum is the `max`/`maximum` marker.
	YearMaximum
)

// YearNum is a convenience constructor for a concrete year.
func YearNum(n int64) Year {
	return Year{Kind: YearNumber, Number: n}
}

// ParseYear parses a FROM/TO/UNTIL year column.
func ParseYear(input string) (Year, error) {
	switch strings.ToLower(input) {
	case "min", "minimum":
		return Year{Kind: YearMinimum}, nil
	case "max", "maximum":
		return Year{Kind: YearMaximum}, nil
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return Year{}, parseErr(ErrFailedYearParse, input)
	}
	return YearNum(n), nil
}

// Month is a calendar month, January == 1.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = map[string]Month{
	"jan": January, "january": January,
	"feb": February, "february": February,
	"mar": March, "march": March,
	"apr": April, "april": April,
	"may": May,
	"jun": June, "june": June,
	"jul": July, "july": July,
	"aug": August, "august": August,
	"sep": September, "september": September,
	"oct": October, "october": October,
	"nov": November, "november": November,
	"dec": December, "december": December,
}

// ParseMonth parses a month column by its English name or abbreviation.
func ParseMonth(input string) (Month, error) {
	if m, ok := monthNames[strings.ToLower(input)]; ok {
		return m, nil
	}
	return 0, parseErr(ErrFailedMonthParse, strings.ToLower(input))
}

var monthLengths = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (m Month) length(leap bool) int {
	if m == February && leap {
		return 29
	}
	return monthLengths[m-1]
}

func (m Month) next() (Month, bool) {
	if m == December {
		return 0, false
	}
	return m + 1, true
}

func (m Month) prev() (Month, bool) {
	if m == January {
		return 0, false
	}
	return m - 1, true
}

// Weekday is a day of the week, Sunday == 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = map[string]Weekday{
	"sun": Sunday, "sunday": Sunday,
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
}

// ParseWeekday parses a weekday by its English name or abbreviation.
func ParseWeekday(input string) (Weekday, error) {
	if wd, ok := weekdayNames[strings.ToLower(input)]; ok {
		return wd, nil
	}
	return 0, parseErr(ErrFailedWeekdayParse, strings.ToLower(input))
}

// weekdayFor computes the weekday of a proleptic Gregorian date using
// Sakamoto's congruence.
func weekdayFor(year int64, month Month, day int) Weekday {
	t := [...]int64{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := year
	if month < March {
		y--
	}
	sum := y + y/4 - y/100 + y/400 + t[month-1] + int64(day)
	return Weekday(((sum % 7) + 7) % 7)
}

func isLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayForm discriminates the DaySpec variants.
type DayForm int

const (
	// DayOrdinal is a plain day-of-month number.
	DayOrdinal DayForm = iota
	// DayLast is the last given weekday of the month (`lastSun`).
	DayLast
	// DayLastOnOrBefore is the last given weekday before or on a day
	// number (`Sun<=25`).
	DayLastOnOrBefore
	// DayFirstOnOrAfter is the first given weekday on or after a day
	// number (`Sun>=8`).
	DayFirstOnOrAfter
)

// DaySpec is an ON column value: either an absolute day of the month or a
// weekday constraint relative to one.
type DaySpec struct {
	Form    DayForm
	Weekday Weekday
	Day     int
}

// ParseDaySpec parses an ON column.
func ParseDaySpec(input string) (DaySpec, error) {
	if input != "" && allDigits(input) {
		n, err := strconv.Atoi(input)
		if err != nil {
			return DaySpec{}, parseErr(ErrInvalidDaySpec, input)
		}
		return DaySpec{Form: DayOrdinal, Day: n}, nil
	}

	if rest, ok := strings.CutPrefix(input, "last"); ok {
		wd, err := ParseWeekday(rest)
		if err != nil {
			return DaySpec{}, err
		}
		return DaySpec{Form: DayLast, Weekday: wd}, nil
	}

	if len(input) < 6 {
		return DaySpec{}, parseErr(ErrInvalidDaySpec, input)
	}
	wd, err := ParseWeekday(input[:3])
	if err != nil {
		return DaySpec{}, err
	}

	var form DayForm
	switch input[3:5] {
	case ">=":
		form = DayFirstOnOrAfter
	case "<=":
		form = DayLastOnOrBefore
	default:
		return DaySpec{}, parseErr(ErrInvalidDaySpec, input)
	}

	day, err := strconv.Atoi(input[5:])
	if err != nil || day < 0 {
		return DaySpec{}, parseErr(ErrInvalidDaySpec, input)
	}
	return DaySpec{Form: form, Weekday: wd, Day: day}, nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Concrete resolves the spec to an actual month and day within the given
// year. Weekday constraints near month boundaries may land in the adjacent
// month (`Sun>=25` in April can resolve to May 1).
func (d DaySpec) Concrete(year int64, month Month) (Month, int) {
	leap := isLeap(year)
	length := month.length(leap)

	switch d.Form {
	case DayOrdinal:
		return month, d.Day

	case DayLast:
		for day := length; day >= 1; day-- {
			if weekdayFor(year, month, day) == d.Weekday {
				return month, day
			}
		}

	case DayLastOnOrBefore:
		prevMonth, havePrev := month.prev()
		prevLength := 0
		if havePrev {
			prevLength = prevMonth.length(leap)
		}
		for day := d.Day; day >= -7; day-- {
			if day >= 1 && weekdayFor(year, month, day) == d.Weekday {
				return month, day
			}
			if day < 1 && havePrev && weekdayFor(year, prevMonth, prevLength+day) == d.Weekday {
				return prevMonth, prevLength + day
			}
		}

	case DayFirstOnOrAfter:
		nextMonth, haveNext := month.next()
		for day := d.Day; day <= d.Day+7; day++ {
			if day <= length && weekdayFor(year, month, day) == d.Weekday {
				return month, day
			}
			if day > length && haveNext && weekdayFor(year, nextMonth, day-length) == d.Weekday {
				return nextMonth, day - length
			}
		}
	}

	// A weekday always occurs within any 7-day window, so the loops above
	// only fall through on an out-of-range ordinal.
	return month, d.Day
}

// TimeSpec is a signed time-of-day value with up to second precision.
// Negative values distribute the sign across components, so -0:14:44 holds
// hours 0, minutes -14, seconds -44.
type TimeSpec struct {
	Hours   int
	Minutes int
	Seconds int
}

// AsSeconds returns the spec as a number of seconds past midnight.
func (t TimeSpec) AsSeconds() int64 {
	return int64(t.Hours)*3600 + int64(t.Minutes)*60 + int64(t.Seconds)
}

// IsZero reports whether the spec is exactly midnight.
func (t TimeSpec) IsZero() bool {
	return t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// ParseTimeSpec parses a GMTOFF/AT/SAVE style time column: `-`, hours,
// hours:minutes, or hours:minutes:seconds, optionally negative.
func ParseTimeSpec(input string) (TimeSpec, error) {
	if input == "-" {
		return TimeSpec{}, nil
	}

	neg := 1
	if strings.HasPrefix(input, "-") {
		neg = -1
	}

	parts := strings.Split(input, ":")
	if len(parts) == 0 || len(parts) > 3 {
		return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
	}
	spec := TimeSpec{Hours: hours}

	if len(parts) >= 2 {
		if len(parts[1]) != 2 {
			return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
		}
		spec.Minutes = minutes * neg
	}
	if len(parts) == 3 {
		if len(parts[2]) != 2 {
			return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
		}
		seconds, err := strconv.Atoi(parts[2])
		if err != nil {
			return TimeSpec{}, parseErr(ErrInvalidTimeSpec, input)
		}
		spec.Seconds = seconds * neg
	}
	return spec, nil
}

// TimeType says which clock a time value refers to.
type TimeType int

const (
	// TimeWall is local wall-clock time, the default.
	TimeWall TimeType = iota
	// TimeStandard is local standard time, ignoring DST.
	TimeStandard
	// TimeUniversal is UTC.
	TimeUniversal
)

func timeTypeFromSuffix(c byte) (TimeType, bool) {
	switch c {
	case 'w':
		return TimeWall, true
	case 's':
		return TimeStandard, true
	case 'u', 'g', 'z':
		return TimeUniversal, true
	}
	return TimeWall, false
}

// ClockTime pairs a time-of-day with the clock it is measured against, as in
// the AT and UNTIL columns (`1:00u`, `2:00s`, `0:00`).
type ClockTime struct {
	Time TimeSpec
	Type TimeType
}

// ParseClockTime parses a time column with an optional w/s/u/g/z suffix.
func ParseClockTime(input string) (ClockTime, error) {
	if input == "-" {
		return ClockTime{}, nil
	}
	if allDigitsOrHyphen(input) {
		spec, err := ParseTimeSpec(input)
		if err != nil {
			return ClockTime{}, err
		}
		return ClockTime{Time: spec}, nil
	}

	value := input
	clockType := TimeWall
	if len(input) > 0 {
		if ty, ok := timeTypeFromSuffix(input[len(input)-1]); ok {
			value = input[:len(input)-1]
			clockType = ty
		}
	}

	spec, err := ParseTimeSpec(value)
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Time: spec, Type: clockType}, nil
}

func allDigitsOrHyphen(s string) bool {
	for _, c := range s {
		if c != '-' && c != ':' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// ChangeLevel says how much of a ChangeTime was specified.
type ChangeLevel int

const (
	// UntilYear is the earliest point of a year.
	UntilYear ChangeLevel = iota
	// UntilMonth is the earliest point of a month.
	UntilMonth
	// UntilDay is the earliest point of a day.
	UntilDay
	// UntilTime is an exact time of day.
	UntilTime
)

// ChangeTime is the UNTIL column of a zone era: the moment at which the
// era's rules stop applying, given with as few units as were written.
type ChangeTime struct {
	Level ChangeLevel
	Year  Year
	Month Month
	Day   DaySpec
	Time  ClockTime
}

// YearNumber returns the change's year. It must only be called on change
// times with a concrete year, which is all the zoneinfo corpus contains.
func (c ChangeTime) YearNumber() int64 {
	if c.Year.Kind != YearNumber {
		panic("zoneinfo: change time without a concrete year")
	}
	return c.Year.Number
}

// Timestamp converts the change time to seconds since the Unix epoch. The
// zone's standard offset and the active DST offset are needed to anchor
// wall-clock and standard-clock values to UTC.
func (c ChangeTime) Timestamp(utcOffset, dstOffset int64) int64 {
	year := c.YearNumber()

	month := January
	day := DaySpec{Form: DayOrdinal, Day: 1}
	if c.Level >= UntilMonth {
		month = c.Month
	}
	if c.Level >= UntilDay {
		day = c.Day
	}

	var clock ClockTime
	if c.Level == UntilTime {
		clock = c.Time
	}

	m, d := day.Concrete(year, month)
	ts := civilToTimestamp(year, m, d) + clock.Time.AsSeconds()

	switch clock.Type {
	case TimeUniversal:
		return ts
	case TimeStandard:
		return ts - utcOffset
	default:
		return ts - (utcOffset + dstOffset)
	}
}

var daysBeforeMonth = [...]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// civilToTimestamp returns the Unix timestamp of midnight at the start of
// the given proleptic Gregorian date.
func civilToTimestamp(year int64, month Month, day int) int64 {
	const secondsPerDay = 24 * 60 * 60

	var days int64
	if year >= 1970 {
		for y := int64(1970); y < year; y++ {
			days += daysInYear(y)
		}
	} else {
		for y := year; y < 1970; y++ {
			days -= daysInYear(y)
		}
	}

	days += daysBeforeMonth[month-1]
	if month > February && isLeap(year) {
		days++
	}
	days += int64(day) - 1

	return days * secondsPerDay
}

func daysInYear(year int64) int64 {
	if isLeap(year) {
		return 366
	}
	return 365
}

// SavingKind discriminates the RULES/SAVE column forms.
type SavingKind int

const (
	// SavingNone sticks to the era's standard offset.
	SavingNone SavingKind = iota
	// SavingOneOff applies a fixed amount of saving for the whole era.
	SavingOneOff
	// SavingNamed applies every rule in a named ruleset.
	SavingNamed
)

// Saving is the RULES/SAVE column of a zone era.
type Saving struct {
	Kind   SavingKind
	Amount TimeSpec
	Rules  string
}

// ParseSaving parses a RULES/SAVE column: `-`, a ruleset name, or a fixed
// amount of time to save.
func ParseSaving(input string) (Saving, error) {
	if input == "-" {
		return Saving{Kind: SavingNone}, nil
	}
	if isRulesetName(input) {
		return Saving{Kind: SavingNamed, Rules: input}, nil
	}
	if amount, err := ParseTimeSpec(input); err == nil {
		return Saving{Kind: SavingOneOff, Amount: amount}, nil
	}
	return Saving{}, parseErr(ErrInvalidSaving, input)
}

func isRulesetName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '-' && c != '_' && !isAlpha(c) {
			return false
		}
	}
	return true
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ZoneInfo carries the fields shared by zone lines and their continuations:
// everything after the zone name.
type ZoneInfo struct {
	// UTCOffset is the amount of time added to UTC to get standard time in
	// the zone.
	UTCOffset TimeSpec
	// Saving selects the DST behaviour while this era is in effect.
	Saving Saving
	// Format is the abbreviation template, with %s as the letters marker
	// and %z as the numeric-offset marker.
	Format string
	// Until is the moment the era ends, or nil when it runs forever.
	Until *ChangeTime
}

// Rule is a single `Rule` line.
type Rule struct {
	// Name of the ruleset this rule belongs to.
	Name string
	// FromYear is the first year the rule applies in.
	FromYear Year
	// ToYear is the final year, or nil when the TO column was `only`.
	ToYear *Year
	// Month and Day locate the rule's activation within a year.
	Month Month
	Day   DaySpec
	// Time is the time of day the rule activates at.
	Time ClockTime
	// Save is the amount of time added while the rule is in effect.
	Save TimeSpec
	// Letters is the variable part of the abbreviation, empty when the
	// column was `-`.
	Letters string
}

// Zone is a `Zone` line: a name plus the first era.
type Zone struct {
	Name string
	Info ZoneInfo
}

// Continuation is an era line continuing the most recent Zone.
type Continuation struct {
	Info ZoneInfo
}

// Link is a `Link` line aliasing Existing under the name New.
type Link struct {
	Existing string
	New      string
}

// Space is a blank or comment-only line.
type Space struct{}

// Line is implemented by the concrete zoneinfo line kinds: Space, Zone,
// Continuation, Rule, and Link.
type Line interface {
	line()
}

func (Space) line()        {}
func (Zone) line()         {}
func (Continuation) line() {}
func (Rule) line()         {}
func (Link) line()         {}

// ParseLine classifies and parses a single line of zoneinfo input. Comments
// run from `#` to the end of the line.
func ParseLine(input string) (Line, error) {
	if idx := strings.IndexByte(input, '#'); idx >= 0 {
		input = input[:idx]
	}

	if strings.TrimSpace(input) == "" {
		return Space{}, nil
	}

	switch {
	case strings.HasPrefix(input, "Zone"):
		return parseZone(input)
	case strings.HasPrefix(input, " ") || strings.HasPrefix(input, "\t"):
		info, err := zoneInfoFromFields(strings.Fields(input))
		if err != nil {
			return nil, err
		}
		return Continuation{Info: info}, nil
	case strings.HasPrefix(input, "Rule"):
		return parseRule(input)
	case strings.HasPrefix(input, "Link"):
		return parseLink(input)
	}

	return nil, parseErr(ErrInvalidLineType, input)
}

func parseZone(input string) (Line, error) {
	fields := strings.Fields(input)
	if len(fields) < 2 || fields[0] != "Zone" {
		return nil, parseErr(ErrNotZoneLine, "")
	}
	info, err := zoneInfoFromFields(fields[2:])
	if err != nil {
		return nil, err
	}
	return Zone{Name: fields[1], Info: info}, nil
}

// zoneInfoFromFields parses the era columns shared by zone and continuation
// lines: GMTOFF RULES/SAVE FORMAT [UNTILYEAR [MONTH [DAY [TIME]]]].
func zoneInfoFromFields(fields []string) (ZoneInfo, error) {
	if len(fields) < 3 {
		return ZoneInfo{}, parseErr(ErrNotZoneLine, "")
	}

	offset, err := ParseTimeSpec(fields[0])
	if err != nil {
		return ZoneInfo{}, err
	}
	saving, err := ParseSaving(fields[1])
	if err != nil {
		return ZoneInfo{}, err
	}

	info := ZoneInfo{
		UTCOffset: offset,
		Saving:    saving,
		Format:    fields[2],
	}

	rest := fields[3:]
	if len(rest) == 0 {
		return info, nil
	}

	change := ChangeTime{Level: UntilYear}
	change.Year, err = ParseYear(rest[0])
	if err != nil {
		return ZoneInfo{}, err
	}
	if len(rest) >= 2 {
		change.Level = UntilMonth
		change.Month, err = ParseMonth(rest[1])
		if err != nil {
			return ZoneInfo{}, err
		}
	}
	if len(rest) >= 3 {
		change.Level = UntilDay
		change.Day, err = ParseDaySpec(rest[2])
		if err != nil {
			return ZoneInfo{}, err
		}
	}
	if len(rest) >= 4 {
		change.Level = UntilTime
		change.Time, err = ParseClockTime(rest[3])
		if err != nil {
			return ZoneInfo{}, err
		}
	}

	info.Until = &change
	return info, nil
}

func parseRule(input string) (Line, error) {
	fields := strings.Fields(input)
	if len(fields) < 10 || fields[0] != "Rule" {
		return nil, parseErr(ErrNotRuleLine, "")
	}

	rule := Rule{Name: fields[1]}

	var err error
	rule.FromYear, err = ParseYear(fields[2])
	if err != nil {
		return nil, err
	}

	// The TO column can be `only` to restrict the rule to the FROM year.
	if fields[3] != "only" {
		to, err := ParseYear(fields[3])
		if err != nil {
			return nil, err
		}
		rule.ToYear = &to
	}

	// The TYPE column exists for compatibility with ancient zic inputs and
	// must hold a hyphen. The Unicode hyphen shows up in the wild too.
	if fields[4] != "-" && fields[4] != "‐" {
		return nil, parseErr(ErrTypeColumnNotHyphen, fields[4])
	}

	rule.Month, err = ParseMonth(fields[5])
	if err != nil {
		return nil, err
	}
	rule.Day, err = ParseDaySpec(fields[6])
	if err != nil {
		return nil, err
	}
	rule.Time, err = ParseClockTime(fields[7])
	if err != nil {
		return nil, err
	}
	rule.Save, err = ParseTimeSpec(fields[8])
	if err != nil {
		return nil, err
	}
	if fields[9] != "-" {
		rule.Letters = fields[9]
	}

	return rule, nil
}

func parseLink(input string) (Line, error) {
	fields := strings.Fields(input)
	if len(fields) < 3 || fields[0] != "Link" {
		return nil, parseErr(ErrNotLinkLine, "")
	}
	return Link{Existing: fields[1], New: fields[2]}, nil
}
