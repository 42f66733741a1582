// Package application wires config file resolution, loading and rendering
// behind the commands exposed by the CLI, keeping the main package focused on
// flag parsing.
package application
