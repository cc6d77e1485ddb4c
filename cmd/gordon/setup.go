package main

import (
	"context"
	"fmt"

	"github.com/fpgaflash/gordon"
	"periph.io/x/conn/v3/gpio"
)

// session bundles an open bridge with the descriptor identified on it, and
// a programmer built from both, so each subcommand only needs one call to
// set up.
type session struct {
	bridge *gordon.Bridge
	desc   *gordon.ChipDescriptor
	prog   *gordon.Programmer
}

func openSession(ctx context.Context) (*session, error) {
	b, err := gordon.OpenBridge(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening FT2232H bridge: %w", err)
	}

	// Hold the FPGA in reset so it can't drive the shared SPI bus while we
	// program the flash directly.
	if err := b.ResetFPGA(gpio.Low); err != nil {
		return nil, fmt.Errorf("asserting FPGA reset: %w", err)
	}
	if err := b.PowerUp(ctx); err != nil {
		return nil, fmt.Errorf("flash power up: %w", err)
	}

	desc, err := gordon.Identify(ctx, b.Transport())
	if err != nil {
		return nil, err
	}

	return &session{bridge: b, desc: desc, prog: gordon.NewProgrammer(b.Transport(), desc)}, nil
}

func (s *session) close(ctx context.Context) {
	s.bridge.PowerDown(ctx)
	s.bridge.ResetFPGA(gpio.High)
}
