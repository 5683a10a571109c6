// Package file provides a TOML file implementation of the catalog
// store. The catalog lives in a single TOML file (by default
// ~/.dimens/catalog.toml) holding ordered declaration tables; the store
// can also watch the file and signal external edits so the live
// registry reloads without restarting.
package file
