// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The unit expression parser and the dimension reducer live here.
// Both are pure functions of their input and the registry.
//
// Services are pure Go with no CGO or external dependencies.
package services
