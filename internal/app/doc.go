// Package app wires configuration, logging and the search engine together
// for one solver run and renders its report.
package app
