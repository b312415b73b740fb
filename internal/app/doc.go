// Package app wires application dependencies for the CLI.
//
// It builds the codecs, the auto-detector and the clipboard from Config,
// exposing them via the Wire struct for commands to use.
package app
