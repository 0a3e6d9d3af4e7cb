// Package locale provides culture data used to parse and render dates:
// date and time patterns, month and day names, AM/PM designators and
// separators. Cultures are immutable and matched by BCP 47 tag.
package locale
