// Package drone provides the Drone aggregate root of the fleet: its model
// catalogue, its operational state machine and the battery and weight rules
// that gate loading.
//
// Key business rules:
//   - A drone's weight limit always equals the maximum carry weight of its model
//     (LIGHTWEIGHT 400, MIDDLEWEIGHT 600, CRUISERWEIGHT 800, HEAVYWEIGHT 1000)
//   - A drone can only be loaded while its battery is at least LowBatteryThreshold
//   - A load event moves IDLE and LOADING drones to LOADED and leaves every other state as is
//   - A return sweep moves DELIVERED drones to RETURNING and consumes ReturnBatteryCost
//
// No transition out of RETURNING exists in this package.
package drone
