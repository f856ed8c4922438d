// Package tui provides the interactive terminal components of conswap: a
// config picker that swaps the selected config into place, and a configure
// wizard that steps through a group's descriptor fields.
//
// Both components are thin bubbletea models; the commands driving them own
// all state changes, so the package never mutates groups itself.
package tui
