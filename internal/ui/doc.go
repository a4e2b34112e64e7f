// Package ui provides theme and color support for the command-line output.
// It defines color schemes and ANSI escape code accessors for consistent
// styling, and honors NO_COLOR.
//
// This package is a shared dependency for packages that need color output,
// keeping business logic free of presentation concerns.
package ui
