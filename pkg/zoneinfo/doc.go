// Package zoneinfo models the textual format of the IANA time-zone database
// and provides the contracts used to load and parse it.
//
// A zoneinfo data file is line-oriented: every line is either blank (or a
// comment), a Rule definition, a Zone definition, a continuation of the
// previous Zone, or a Link aliasing one zone name to another. ParseLine
// classifies a single line; the Parser contract turns a whole Document into
// the ordered line sequence consumed by the table builder.
package zoneinfo
