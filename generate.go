//go:build ignore

package main

// This file exists solely to provide a go:generate directive at the project root.
// Run `go generate` to regenerate the screen sets of the examples.
//
// Usage:
//   go generate
//
// For your own packages, add this directive next to the screen struct:
//   //go:generate go run github.com/grindlemire/go-tuistack/cmd/stackgen generate --type AppScreens

//go:generate go run ./cmd/stackgen generate --type AppScreens --state State ./examples/stateful/main.go
//go:generate go run ./cmd/stackgen generate --type AppScreens ./examples/ticks/main.go
