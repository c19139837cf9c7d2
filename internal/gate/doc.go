// Package gate implements the software gate kernel and the dispatcher
// that routes requests between the accelerator bridge and the software
// path.
//
// # Dispatch Policy
//
// With an available bridge the hardware path runs first. A hardware
// failure degrades the bridge permanently and the same call reruns the
// transform in software, so the caller always sees a correct result.
// Unavailable and degraded bridges route straight to software.
//
// Validation happens before any path is chosen. A rejected request
// never mutates the state vector.
package gate
