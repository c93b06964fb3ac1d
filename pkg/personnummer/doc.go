// Package personnummer models Swedish personal identity numbers.
//
// A personal identity number encodes a date of birth, a three digit serial
// number and a Luhn check digit. It is written either in the short form
// YYMMDD-NNNK, where the separator turns into '+' once the bearer is a
// hundred years old, or in the long form YYYYMMDDNNNK. Coordination numbers
// reuse the same layout with sixty added to the day of month.
//
// # Construction
//
// Number values are only produced by Parse, TryParse, Create and their
// reference-date variants. Every returned Number has passed all checks:
//
//	year → month → day → serial number → checksum
//
// and the first violated rule is reported as a *domainerrors.Error whose Code
// identifies the failure kind (see the Err* sentinels).
//
// # Reference dates
//
// Short forms only carry two year digits, so the century is resolved against
// a reference date. The same date decides the short-form separator and the
// age hint. Functions ending in At take that date explicitly; the others use
// time.Now() at the call site and are intended for outermost callers only.
//
// Domain Purity: apart from those convenience wrappers the package performs
// no I/O and never reads the clock.
package personnummer
