// Package units renders media quantities for display: byte counts scaled to
// the best binary unit, sample rates in hertz, and bit rates.
//
// Unit arithmetic is locale independent. Only the final number rendering
// goes through golang.org/x/text/message, which applies the locale's digit
// grouping and decimal separator.
package units
