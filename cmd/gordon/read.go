package main

import (
	"context"
	"encoding/hex"
	"os"

	"github.com/spf13/pflag"
)

func readCommand(ctx context.Context, args []string) {
	fs := pflag.NewFlagSet("read", pflag.ExitOnError)
	var (
		addr    uint32
		nread   uint32
		outFile string
	)
	fs.Uint32VarP(&addr, "addr", "a", 0, "start address")
	fs.Uint32VarP(&nread, "n", "n", 256, "number of bytes to read")
	fs.StringVarP(&outFile, "output", "o", "", "output file (default: hexdump)")
	fs.Parse(args)

	s, err := openSession(ctx)
	if err != nil {
		fatalf("%v", err)
	}
	defer s.close(ctx)

	data, err := s.prog.Read(ctx, addr, nread)
	if err != nil {
		fatalf("read flash failed: %v", err)
	}
	if outFile == "" {
		os.Stdout.WriteString(hex.Dump(data))
		return
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		fatalf("write file failed: %v", err)
	}
}
