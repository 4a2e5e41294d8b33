// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Catalog hot reload, camera script replay, TOML export
// 0.2.0 - Instanced mode, search highlighting, star detail panel
// 0.1.0 - Initial release: star view, pick selection, camera state machine
