// Package hoard holds module-wide metadata.
package hoard

// Version is the release version of the hoard module, without the leading v.
const Version = "0.1.0"
