package gordon

import "context"

// Transport is the single abstract operation the command layer needs from
// whatever physically reaches the flash chip: assert chip-select, clock out
// cmd MSB-first, clock in recvLen response bytes, deassert chip-select. The
// whole exchange is one atomic SPI transaction; no other SPI activity may
// interleave with it.
//
// recvLen == 0 is a valid send-only transaction. len(cmd) is always >= 1.
// Implementations should treat a non-nil error as fatal to the caller's
// current operation — there is no local retry above this layer.
type Transport interface {
	SendMessage(ctx context.Context, cmd []byte, recvLen int) ([]byte, error)
}
