// Package platform contains OS integration: locating the per-user cache
// directory and keeping downloaded posters on disk.
package platform
