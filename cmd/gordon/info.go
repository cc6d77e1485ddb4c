package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"periph.io/x/host/v3/ftdi"
)

func infoCommand(ctx context.Context, args []string) {
	fs := pflag.NewFlagSet("info", pflag.ExitOnError)
	fs.Parse(args)

	s, err := openSession(ctx)
	if err != nil {
		fatalf("%v", err)
	}
	defer s.close(ctx)

	// Reference: https://github.com/periph/cmd/tree/main/ftdi-list
	i := ftdi.Info{}
	s.bridge.FTDI().Info(&i)
	fmt.Printf("Bridge type:     %s\n", i.Type)
	fmt.Printf("Bridge VID:PID:  %#04x:%#04x\n", i.VenID, i.DevID)

	fmt.Printf("Vendor:          %s\n", s.desc.VendorName)
	fmt.Printf("Device:          %s\n", s.desc.DeviceName)
	fmt.Printf("JEDEC ID:        %#08X %#04X\n", s.desc.VendorID, s.desc.DeviceID)
	fmt.Printf("Capacity:        %d KiB\n", s.desc.KBCapacity)
	fmt.Printf("Page size:       %d bytes\n", s.desc.PageSize)
}
