package gordon

import "fmt"

// UnknownDeviceError is returned by Identify when the JEDEC ID read back
// from the transport does not match any entry in the descriptor table.
type UnknownDeviceError struct {
	VendorID uint32
	DeviceID uint16
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("gordon: unknown device: vendorID = 0x%08X, deviceID = 0x%04X", e.VendorID, e.DeviceID)
}

// OutOfRangeError is returned when a read or write range extends beyond a
// descriptor's capacity.
type OutOfRangeError struct {
	Addr, Len, Capacity uint32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gordon: address range error: requested %d bytes at address 0x%08X from a device with a capacity of only %d bytes", e.Len, e.Addr, e.Capacity)
}

// MisalignedError is returned when a write's start address falls inside,
// rather than on the boundary of, an erase block.
type MisalignedError struct {
	// Lo and Hi are the nearest aligned addresses below and above the
	// requested, misaligned address.
	Lo, Hi uint32
}

func (e *MisalignedError) Error() string {
	return fmt.Sprintf("gordon: address alignment error: the nearest aligned addresses are 0x%08X and 0x%08X", e.Lo, e.Hi)
}
