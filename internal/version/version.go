// ABOUTME: Version constants for the soundscape visualizer
// ABOUTME: Reported in server hello messages and mDNS TXT records
package version

const (
	// Version is the current release version
	Version = "0.1.0"

	// Product is the public product name
	Product = "Sacred Soundscapes"

	// Manufacturer identifies who ships this build
	Manufacturer = "Sacred Soundscapes Project"
)
