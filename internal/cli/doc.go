// Package cli turns command-line arguments into a validated config.Config.
//
// A configuration file given with -config is loaded first; any flag that is
// set explicitly then overrides the corresponding file value.
package cli
