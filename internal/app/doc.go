// Package app wires application dependencies for the server and the CLI.
//
// Configuration is read with viper from defaults, an optional config file
// and the environment (PROTMOTIF_* plus the unprefixed PORT,
// MAX_PROTEIN_LENGTH and PG_* names). NewWire builds the concrete stores and
// services from a Config and exposes them via the Wire struct.
package app
