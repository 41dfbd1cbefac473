// Package editor provides the Bubble Tea component that edits a buffer.Buffer.
//
// The package owns the cursor/viewport controller, the character classifier
// and renderer that color comment lines, leading characters and separators,
// and the input dispatcher with its exit-confirmation state machine.
package editor
