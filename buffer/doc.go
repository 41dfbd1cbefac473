// Package buffer implements the line-oriented document model for sice.
//
// Lines are stored exactly as read, each keeping its own terminator ("\n" or
// "\r\n"), so saving writes the document back verbatim.
// Coordinates are 0-based (Row, Col) in runes of the line text, which never
// includes the terminator.
package buffer
