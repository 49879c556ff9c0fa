// ABOUTME: High-level soundscape library API
// ABOUTME: Provides a simple Visualizer API for most use cases
// Package soundscape provides a high-level API for music visualization.
//
// This is the main entry point for most library users, providing:
//   - Visualizer: Run the full analysis pipeline and render scenes
//   - Custom audio sources via the Source option
//
// For lower-level control, see the internal audio, analysis, palette,
// render, and engine packages.
//
// Example:
//
//	viz, err := soundscape.New(soundscape.Config{
//	    AudioFile: "/path/to/track.mp3",
//	    Mode:      "galaxy",
//	})
//	viz.Start()
//	defer viz.Stop()
//
//	// ~60 times per second:
//	shapes := viz.Scene(t, 800, 600)
package soundscape
