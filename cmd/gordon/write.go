package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"
)

func writeCommand(ctx context.Context, args []string) {
	fs := pflag.NewFlagSet("write", pflag.ExitOnError)
	var (
		filename string
		addr     uint32
	)
	fs.StringVarP(&filename, "file", "f", "", "input file")
	fs.Uint32VarP(&addr, "addr", "a", 0, "start address")
	fs.Parse(args)

	if filename == "" {
		fatalUsage("input file is required (-f)")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fatalf("failed to read file: %v", err)
	}

	s, err := openSession(ctx)
	if err != nil {
		fatalf("%v", err)
	}
	defer s.close(ctx)

	if err := s.prog.Write(ctx, addr, data); err != nil {
		fatalf("write flash failed: %v", err)
	}
}
