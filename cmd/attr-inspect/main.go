// Command attr-inspect is an interactive inspector for attribute
// exchange files.
//
// It loads device and product record files from a store directory,
// lets you examine and edit them, and writes them back as XML. It can
// also capture every loaded record into a CBOR snapshot.
//
// Usage:
//
//	attr-inspect [flags]
//
// Flags:
//
//	-dir string        Store directory for record files (default ".")
//	-catalog string    Catalog file to preload records from
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Interactive Commands:
//
//	device <file>                - Load a device record
//	product <file>               - Load a product record
//	list                         - List loaded records
//	show <file>                  - Show a loaded record
//	name <file> <name>           - Rename a record
//	control <file> <kind> <val>  - Set a device control (Voltage, Power)
//	price <file> <kind> <val>    - Set a product price (Dollars, Euros)
//	discount <file> [val]        - Set or clear a product discount
//	save <file>                  - Write a record back to its file
//	snapshot                     - Capture all loaded records to a snapshot
//	restore                      - Reload records from the snapshot
//	quit                         - Exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	dir := flag.String("dir", ".", "Store directory for record files")
	catalogPath := flag.String("catalog", "", "Catalog file to preload records from")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "invalid log level: %s\n", *logLevel)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	insp, err := newInspector(*dir, *catalogPath, logger)
	if err != nil {
		logger.Error("failed to start inspector", "error", err)
		os.Exit(1)
	}
	defer insp.Close()

	insp.Run()
}
