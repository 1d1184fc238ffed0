// Package xpattern compiles date-time patterns in the letter notation used by
// most formatter libraries (yyyy, MM, dd, HH, mm, ss, n, S, x, X, Z and the
// text fields G, M, E, a) into layouts that parse and format calendar fields.
//
// Quoted text ('T'), optional sections ([...]) and adjacent value parsing
// (yyyyMMdd) are supported. Parsing is strict: the whole text must match and
// the parsed fields must describe an existing date and time.
package xpattern
