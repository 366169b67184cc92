// Package driven defines the secondary ports of the hexagon: interfaces
// the core services depend on and adapters implement. Implementations
// live under internal/adapters/driven and internal/connectors.
package driven
