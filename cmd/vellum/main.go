package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vellum/internal/logger"
	"vellum/internal/tui"
)

func main() {
	// Initialize logger
	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	logger.Debug("Starting vellum...")

	vimEnabled := flag.Bool("vim", true, "enable modal (vim-style) editing")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var fileName, content string
	if flag.NArg() > 0 {
		fileName = flag.Arg(0)
		data, err := os.ReadFile(fileName)
		if err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to read %s: %v", fileName, err)
		}
		content = string(data)
	}

	logger.Info("editing %q, vim=%v", fileName, *vimEnabled)
	tui.Run(fileName, content, *vimEnabled)
}
