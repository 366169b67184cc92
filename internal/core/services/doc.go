// Package services implements the core use cases: collecting a plan tree
// into aggregates and computing frequency reports. Services depend only
// on domain types and driven ports, never on adapters.
package services
