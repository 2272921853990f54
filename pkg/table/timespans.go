package table

import (
	"fmt"

	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// ruleHorizonYear caps rule evaluation for zones whose last era carries an
// open-ended ruleset. Consumers regenerate tables with every tzdata release,
// so the horizon only needs to outlive the data, not the universe.
const ruleHorizonYear = 2100

// earliestRuleYear is the first year rules are evaluated for. The database
// contains no DST rules before the 20th century but era boundaries reach
// back further.
const earliestRuleYear = 1800

// FixedTimespan is one stretch of time with a constant offset: the zone's
// standard offset, the DST saving in effect, and the abbreviation in use.
type FixedTimespan struct {
	UTCOffset int64
	DSTOffset int64
	Name      string
}

// TotalOffset returns the number of seconds added to UTC during the span,
// DST included.
func (t FixedTimespan) TotalOffset() int64 {
	return t.UTCOffset + t.DSTOffset
}

// Transition marks the instant a new fixed timespan takes effect.
type Transition struct {
	// Start is the Unix timestamp at which Span becomes active.
	Start int64
	// Span is the offset state from Start until the next transition.
	Span FixedTimespan
}

// FixedTimespanSet is the complete transition data for one zone: the state
// before the first recorded transition, then every change in order.
type FixedTimespanSet struct {
	First FixedTimespan
	Rest  []Transition
}

// Timespans computes the transition data for the named zone, following link
// aliases. The result is deterministic for a given table.
func (t *Table) Timespans(name string) (*FixedTimespanSet, error) {
	eras, err := t.zoneset(name)
	if err != nil {
		return nil, err
	}

	set := &FixedTimespanSet{}
	var startTime int64

	for i, era := range eras {
		useUntil := i != len(eras)-1
		utcOffset := era.UTCOffset.AsSeconds()
		dstOffset := int64(0)

		// State emitted when the era begins before its first own
		// transition. Rules activating before the era starts fold into it.
		insertStart := i > 0
		startUTC := utcOffset
		startDST := int64(0)
		startName := ""
		haveStartName := false

		switch era.Saving.Kind {
		case zoneinfo.SavingNone, zoneinfo.SavingOneOff:
			if era.Saving.Kind == zoneinfo.SavingOneOff {
				dstOffset = era.Saving.Amount.AsSeconds()
			}
			span := FixedTimespan{
				UTCOffset: utcOffset,
				DSTOffset: dstOffset,
				Name:      formatAbbrev(era.Format, utcOffset, dstOffset, ""),
			}
			if insertStart {
				set.Rest = append(set.Rest, Transition{Start: startTime, Span: span})
				insertStart = false
			} else {
				set.First = span
			}

		case zoneinfo.SavingNamed:
			rules, ok := t.Rulesets[era.Saving.Rules]
			if !ok {
				return nil, fmt.Errorf("table: zone %q references unknown ruleset %q", name, era.Saving.Rules)
			}
			if i == 0 {
				set.First = FixedTimespan{
					UTCOffset: utcOffset,
					Name:      formatAbbrev(era.Format, utcOffset, 0, ""),
				}
			}

		yearLoop:
			for year := int64(earliestRuleYear); year <= ruleHorizonYear; year++ {
				if useUntil && year > era.Until.YearNumber() {
					break
				}

				active := applicableRules(rules, year)
				for len(active) > 0 {
					// Activation order depends on the DST offset in
					// effect, which each activation changes, so the
					// earliest rule is re-picked every step.
					best := 0
					bestAt := ruleActivation(active[0], year, utcOffset, dstOffset)
					for idx := 1; idx < len(active); idx++ {
						if at := ruleActivation(active[idx], year, utcOffset, dstOffset); at < bestAt {
							best, bestAt = idx, at
						}
					}
					rule := active[best]
					active = append(active[:best], active[best+1:]...)

					if useUntil && bestAt >= era.Until.Timestamp(utcOffset, dstOffset) {
						continue yearLoop
					}

					dstOffset = rule.Save.AsSeconds()
					abbrev := formatAbbrev(era.Format, utcOffset, dstOffset, rule.Letters)

					if insertStart && bestAt <= startTime {
						startUTC = utcOffset
						startDST = dstOffset
						startName = abbrev
						haveStartName = true
						continue
					}
					if insertStart {
						n := startName
						if !haveStartName {
							n = formatAbbrev(era.Format, startUTC, startDST, "")
						}
						set.Rest = append(set.Rest, Transition{
							Start: startTime,
							Span:  FixedTimespan{UTCOffset: startUTC, DSTOffset: startDST, Name: n},
						})
						insertStart = false
					}

					set.Rest = append(set.Rest, Transition{
						Start: bestAt,
						Span:  FixedTimespan{UTCOffset: utcOffset, DSTOffset: dstOffset, Name: abbrev},
					})
				}
			}
		}

		if insertStart {
			n := startName
			if !haveStartName {
				n = formatAbbrev(era.Format, startUTC, startDST, "")
			}
			set.Rest = append(set.Rest, Transition{
				Start: startTime,
				Span:  FixedTimespan{UTCOffset: startUTC, DSTOffset: startDST, Name: n},
			})
		}

		if useUntil {
			startTime = era.Until.Timestamp(utcOffset, dstOffset)
		}
	}

	set.normalize()
	return set, nil
}

// normalize drops transitions that change nothing and collapses transitions
// sharing a start instant, keeping the last. Emitted tables stay minimal and
// byte-stable.
func (s *FixedTimespanSet) normalize() {
	if len(s.Rest) == 0 {
		return
	}

	var out []Transition
	prev := s.First
	for _, tr := range s.Rest {
		if len(out) > 0 && out[len(out)-1].Start == tr.Start {
			// Same instant: the later state wins.
			out = out[:len(out)-1]
			if len(out) > 0 {
				prev = out[len(out)-1].Span
			} else {
				prev = s.First
			}
		}
		if tr.Span == prev {
			continue
		}
		out = append(out, tr)
		prev = tr.Span
	}
	s.Rest = out
}

// applicableRules returns the rules of a set that are active in the given
// year.
func applicableRules(rules []zoneinfo.Rule, year int64) []zoneinfo.Rule {
	var out []zoneinfo.Rule
	for _, rule := range rules {
		if ruleAppliesToYear(rule, year) {
			out = append(out, rule)
		}
	}
	return out
}

func ruleAppliesToYear(rule zoneinfo.Rule, year int64) bool {
	from := rule.FromYear
	switch from.Kind {
	case zoneinfo.YearMinimum:
		// applies from the beginning of time
	case zoneinfo.YearNumber:
		if year < from.Number {
			return false
		}
	case zoneinfo.YearMaximum:
		return false
	}

	if rule.ToYear == nil {
		// `only`: the FROM year alone
		return from.Kind == zoneinfo.YearNumber && year == from.Number
	}
	switch rule.ToYear.Kind {
	case zoneinfo.YearMaximum:
		return true
	case zoneinfo.YearNumber:
		return year <= rule.ToYear.Number
	case zoneinfo.YearMinimum:
		return false
	}
	return false
}

// ruleActivation returns the Unix timestamp at which a rule takes effect in
// the given year, anchored by the offsets active at that moment.
func ruleActivation(rule zoneinfo.Rule, year int64, utcOffset, dstOffset int64) int64 {
	change := zoneinfo.ChangeTime{
		Level: zoneinfo.UntilTime,
		Year:  zoneinfo.YearNum(year),
		Month: rule.Month,
		Day:   rule.Day,
		Time:  rule.Time,
	}
	return change.Timestamp(utcOffset, dstOffset)
}
