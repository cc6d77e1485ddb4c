// Command gordon programs, erases, and reads the SPI configuration flash on
// an FPGA board reached through an FT2232H MPSSE bridge.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func fatalUsage(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
	gordon <command> [arguments]

Commands:
	info	 print the attached FT2232H and flash chip identity
	read	 read flash memory
	write	 write flash memory
	erase	 erase flash memory without programming it
`)
	os.Exit(2)
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()
	switch cmd := os.Args[1]; cmd {
	case "info":
		infoCommand(ctx, os.Args[2:])
	case "read":
		readCommand(ctx, os.Args[2:])
	case "write":
		writeCommand(ctx, os.Args[2:])
	case "erase":
		eraseCommand(ctx, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", cmd)
		usage()
	}
}
