// Package services provides domain services that coordinate drones and
// medications in operations no single aggregate can decide alone.
//
// The package includes:
//   - DroneLoader: validates and applies loading a medication onto a drone
package services
