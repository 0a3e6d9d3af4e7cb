// Package timekit provides stateless date and time conversion helpers:
// local and UTC conversion, culture aware parsing and formatting,
// ISO 8601, Unix seconds and human readable offsets from now.
//
// Functions taking time.Time follow a wall clock convention: a value
// located in time.UTC is a UTC reading, any other value is a wall clock
// reading in its own location (usually time.Local). Stamp makes the
// convention explicit by carrying the zone provenance with the value.
package timekit
