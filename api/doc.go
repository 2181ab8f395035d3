// Package api defines the public contracts of the ringcore library:
// ring and pool interfaces, the Control surface, and the shared error
// taxonomy. Implementations live in spsc, pool, control, and facade.
//
// License: Apache-2.0
package api
