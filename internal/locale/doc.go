// Package locale exposes the ambient user locale as a narrow read-only
// capability.
//
// Formatting code receives a Provider instead of reading the environment
// itself, so everything except Environment stays pure and testable. Locales
// are backed by golang.org/x/text/language tags and can render themselves
// in POSIX identifier form ("ru_RU").
package locale
