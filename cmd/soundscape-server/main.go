// ABOUTME: Entry point for the soundscape scene server
// ABOUTME: Parses CLI flags and serves rendered scenes to WebSocket clients
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
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/engine"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/raster"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/server"
	"github.com/Anthony-Leon6/sacred-soundscapes-main/internal/version"
)

var (
	port      = flag.Int("port", 8930, "WebSocket server port")
	name      = flag.String("name", "", "Server friendly name (default: hostname-soundscape-server)")
	logFile   = flag.String("log-file", "soundscape-server.log", "Log file path")
	noMDNS    = flag.Bool("no-mdns", false, "Disable mDNS advertisement")
	fps       = flag.Int("fps", server.DefaultFPS, "Scene broadcast rate")
	mode      = flag.String("mode", "sacred", "Initial visualization mode")
	bins      = flag.Int("bins", audio.DefaultBins, "Spectrum resolution in frequency bins")
	audioFile = flag.String("audio-file", "", "MP3 file to analyze (default: simulated audio)")
	snapshot  = flag.String("snapshot", "", "Write a PNG of the scene to this path every 10 seconds")
)

func main() {
	flag.Parse()

	// Set up logging (both file and console)
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer f.Close()

	log.SetOutput(io.MultiWriter(os.Stdout, f))

	// Determine server name
	serverName := *name
	if serverName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		serverName = fmt.Sprintf("%s-soundscape-server", hostname)
	}

	log.Printf("Starting %s server %s on port %d", version.Product, serverName, *port)
	log.Printf("Logging to: %s", *logFile)
	log.Printf("Press Ctrl-C to stop")

	var source audio.Source
	if *audioFile != "" {
		source, err = audio.NewMP3Source(*audioFile, *bins)
		if err != nil {
			log.Fatalf("Failed to open audio file: %v", err)
		}
	} else {
		source = audio.NewSimulatedSource(*bins)
	}
	defer source.Close()

	eng, err := engine.New(engine.Config{
		Source: source,
		Mode:   *mode,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	srv := server.New(server.Config{
		Port:       *port,
		Name:       serverName,
		Bins:       *bins,
		FPS:        *fps,
		EnableMDNS: !*noMDNS,
	}, eng)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if *snapshot != "" {
		go snapshotLoop(ctx, eng, *snapshot)
	}

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("Received %v signal, shutting down gracefully...", sig)

	srv.Stop()
	eng.Stop()
	log.Printf("Server stopped")
}

// snapshotLoop periodically rasterizes the current scene to a PNG file
func snapshotLoop(ctx context.Context, eng *engine.Engine, path string) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			prims := eng.Scene(t, 800, 600)
			if prims == nil {
				continue
			}
			if err := raster.WritePNG(path, prims, 800, 600); err != nil {
				log.Printf("Snapshot failed: %v", err)
				continue
			}
			log.Printf("Wrote scene snapshot to %s", path)
		}
	}
}
