// Package legacy converts old-format deck lists into the current deck
// schema. The old format is a plain text file with one song title per
// line; the title optionally ends in an "OP n" or "ED n" label naming
// which opening or ending the song is.
package legacy
