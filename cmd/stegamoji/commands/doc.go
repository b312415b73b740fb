// Package commands defines the stegamoji CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - hide     Embed a secret message in a carrier string
//   - reveal   Recover a hidden message from a stego string
//   - inspect  Report invisible code points in a string
//
// # Implementation
//
// The root command loads the optional config file and builds the dependency
// graph (codecs, detector, clipboard) before any subcommand runs, so handlers
// share one app context. NotFound is the only expected decode failure and is
// reported as "no hidden message detected" with a hint to retry using an
// explicit scheme.
package commands
