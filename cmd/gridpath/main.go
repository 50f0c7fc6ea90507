// Command gridpath is an interactive terminal editor for weighted grids
// that animates a Dijkstra search from Start to End.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	// The terminal belongs to tcell until Fini, so log lines are held
	// back and written to stderr on exit.
	var logs bytes.Buffer
	logger := log.New(&logs, "", log.LstdFlags|log.Lshortfile)
	defer func() { _, _ = os.Stderr.Write(logs.Bytes()) }()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err = screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	t, err := newTone()
	if err != nil {
		// Non-fatal, the viewer runs without sound
		logger.Printf("[APP] [INFO] audio initialization failed: %v", err)
	}
	defer t.close()

	v, err := newViewer(screen, cfg, logger, t)
	if err != nil {
		screen.Fini()
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	v.run()
}
