// Package paths locates the crawlcheck config file, preferring a project
// file found by walking up from the working directory over the global
// XDG config location.
package paths
