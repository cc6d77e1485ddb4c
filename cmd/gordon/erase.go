package main

import (
	"context"

	"github.com/spf13/pflag"
)

func eraseCommand(ctx context.Context, args []string) {
	fs := pflag.NewFlagSet("erase", pflag.ExitOnError)
	var (
		addr   uint32
		length uint32
		all    bool
	)
	fs.Uint32VarP(&addr, "addr", "a", 0, "start address")
	fs.Uint32VarP(&length, "len", "l", 0, "number of bytes to erase")
	fs.BoolVar(&all, "all", false, "erase the entire device")
	fs.Parse(args)

	s, err := openSession(ctx)
	if err != nil {
		fatalf("%v", err)
	}
	defer s.close(ctx)

	if all {
		length = s.desc.Capacity()
	}
	if length == 0 {
		fatalUsage("either --len or --all is required")
	}

	if err := s.prog.Erase(ctx, addr, length); err != nil {
		fatalf("erase failed: %v", err)
	}
}
