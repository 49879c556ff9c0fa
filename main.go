// ABOUTME: Entry point for the soundscape visualizer TUI
// ABOUTME: Parses CLI flags, builds the analysis engine, and runs the terminal UI
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/audio"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/discovery"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/render"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/ui"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/version"
)

var (
	mode        = flag.String("mode", "sacred", "Initial visualization mode")
	bins        = flag.Int("bins", audio.DefaultBins, "Spectrum resolution in frequency bins")
	intensity   = flag.Float64("intensity", 1.0, "Visual response gain (0.1-2.0)")
	sensitivity = flag.Float64("sensitivity", 1.0, "Audio input gain (0.1-2.0)")
	audioFile   = flag.String("audio-file", "", "MP3 file to analyze (default: simulated audio)")
	logFile     = flag.String("log-file", "soundscape.log", "Log file path")
	noTUI       = flag.Bool("no-tui", false, "Disable TUI, log analysis summaries instead")
	listModes   = flag.Bool("list-modes", false, "Print available visualization modes and exit")
	discover    = flag.Bool("discover", false, "Browse for scene servers on the local network and exit")
)

func main() {
	flag.Parse()

	if *listModes {
		for _, name := range render.Modes() {
			fmt.Println(name)
		}
		return
	}

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *noTUI {
		// Streaming logs mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		// TUI mode: log only to file so the UI owns the terminal
		log.SetOutput(f)
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	if *discover {
		browseServers()
		return
	}

	source, err := buildSource()
	if err != nil {
		log.Fatalf("Failed to open audio source: %v", err)
	}
	defer source.Close()

	eng, err := engine.New(engine.Config{
		Source:      source,
		Mode:        *mode,
		Intensity:   *intensity,
		Sensitivity: *sensitivity,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if *noTUI {
		runHeadless(eng, sigChan)
		return
	}

	prog, err := ui.Run(eng)
	if err != nil {
		log.Fatalf("Failed to start TUI: %v", err)
	}

	go func() {
		<-sigChan
		log.Printf("Shutdown signal received")
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}

	eng.Stop()
	log.Printf("Visualizer stopped")
}

// buildSource opens the MP3 file when one was given, otherwise falls back
// to the built-in simulated source
func buildSource() (audio.Source, error) {
	if *audioFile != "" {
		log.Printf("Analyzing %s", *audioFile)
		return audio.NewMP3Source(*audioFile, *bins)
	}
	log.Printf("Using simulated audio source (%d bins)", *bins)
	return audio.NewSimulatedSource(*bins), nil
}

// runHeadless logs a one-line analysis summary each second until interrupted
func runHeadless(eng *engine.Engine, sigChan <-chan os.Signal) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			log.Printf("Shutdown signal received")
			eng.Stop()
			return
		case <-ticker.C:
			snap := eng.Snapshot()
			if snap == nil {
				continue
			}
			log.Printf("tick=%d mode=%s mood=%s genre=%s tempo=%.0f energy=%.2f primary=%s",
				snap.Tick, eng.Mode(), snap.Features.Mood, snap.Context.Genre,
				snap.Features.Tempo, snap.Features.Energy, snap.Palette.Primary.Hex())
		}
	}
}

// browseServers prints scene servers found on the local network
func browseServers() {
	disc := discovery.NewManager(discovery.Config{})
	defer disc.Stop()

	if err := disc.Browse(); err != nil {
		log.Fatalf("Failed to start discovery: %v", err)
	}

	log.Printf("Browsing for scene servers...")
	deadline := time.After(5 * time.Second)
	found := 0

	for {
		select {
		case server := <-disc.Servers():
			found++
			fmt.Printf("%s at %s:%d\n", server.Name, server.Host, server.Port)
		case <-deadline:
			if found == 0 {
				fmt.Println("No scene servers found")
			}
			return
		}
	}
}
