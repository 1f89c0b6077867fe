// Package commands defines the protmotif CLI.
//
// Commands
//
//   - analyze      Run the offline pipeline and print a report
//   - structure    Predict and render secondary structure (terminal or SVG)
//   - motifs       List motif occurrences
//   - user add     Create an API user and print its ID
//   - export       Write JSON snapshots of every stored protein
//   - submit       Submit a protein to a server
//   - list         List proteins on a server
//   - get          Fetch a protein from a server
//   - fragments    List a protein's fragments from a server
//   - sequence     Fetch a protein's reconstructed sequence
//   - delete       Delete a protein on a server
//
// # Implementation
//
// The root command loads configuration and builds the logger before any
// subcommand runs. Commands that touch the database open it on demand, and
// remote commands talk to --server as --user through the HTTP client.
package commands
