// Package app wires configuration, input loading, the algorithm packages and
// the presenters into a runnable command.
package app
