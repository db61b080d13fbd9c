// Package config holds named simulation constants: no env vars, no
// flags, no config file.
package config

// Map dimensions.
const (
	MapWidth  = 64
	MapHeight = 61
)

// Doomguard night movement budget.
const MaxDoomguardMoveCount = 6
