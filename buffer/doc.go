// Package buffer implements the document model behind the codefield editor.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Every text mutation is recorded as a Change tagged with the Origin that
// caused it, so hosts can tell user edits apart from programmatic value sets.
package buffer
