// Package driving defines the primary ports of the hexagon: the
// interfaces through which the CLI drives the core services.
package driving
