// Package format renders durations, counts and sizes for humans.
//
// Time decomposes a duration over a fixed unit table
// (years > weeks > days > hours > minutes > seconds > milliseconds >
// microseconds > nanoseconds) and renders the non-zero components:
//
//	format.Time(4865268458795)                            // "1 hour, 21 minutes, 5 seconds, 268 milliseconds, 458 microseconds and 795 nanoseconds"
//	format.Time(4865268458795, format.WithShort(true))    // "1h, 21m, 5s, 268ms, 458µs, 795ns"
//	format.Seconds(1974)                                  // "32 minutes and 54 seconds"
//
// Unit and precision names accept singular, plural and abbreviated forms.
// An unknown name is reported with ErrUnknownUnit.
//
// The package also provides AndJoin for natural language lists, Int for
// thousands separators, Filesize for byte counts and Repr for compact
// value descriptions.
package format
