package gordon

import "context"

const (
	cmdReadID          = 0x9F
	cmdReadStatus      = 0x05
	cmdReadStatusAtmel = 0xD7

	jedecContinuation = 0x7F
	// jedecResponseLen is generous: most parts return at most a handful of
	// meaningful bytes, but the response must cover the longest valid
	// continuation chain plus the two device-ID bytes.
	jedecResponseLen = 256
)

// ParseJEDEC parses a Read Identification (0x9F) response into a vendor ID
// (accumulated across any leading 0x7F continuation bytes) and a 16-bit,
// big-endian device ID. It returns the total number of bytes consumed: the
// vendor ID bytes (including the terminal, non-0x7F byte) plus the two
// device-ID bytes.
func ParseJEDEC(resp []byte) (vendorID uint32, deviceID uint16, consumed int) {
	i := 0
	for i < len(resp) && resp[i] == jedecContinuation {
		vendorID |= jedecContinuation
		vendorID <<= 8
		i++
	}
	vendorID |= uint32(resp[i])
	i++
	deviceID = uint16(resp[i])<<8 | uint16(resp[i+1])
	return vendorID, deviceID, i + 2
}

// Identify reads the JEDEC ID from transport and returns a pointer to the
// unique matching descriptor in the package's static table, invoking the
// descriptor's selector to disambiguate configurable parts. Two consecutive
// calls against the same device are deterministic: both the JEDEC read and
// the selector's status read are pure queries with no side effect on the
// device's configuration.
func Identify(ctx context.Context, t Transport) (*ChipDescriptor, error) {
	resp, err := t.SendMessage(ctx, []byte{cmdReadID}, jedecResponseLen)
	if err != nil {
		return nil, err
	}
	vendorID, deviceID, _ := ParseJEDEC(resp)

	idx := -1
	for i := range flashChips {
		if flashChips[i].VendorID == vendorID && flashChips[i].DeviceID == deviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &UnknownDeviceError{VendorID: vendorID, DeviceID: deviceID}
	}

	offset, err := selectVariant(ctx, t, flashChips[idx].Selector)
	if err != nil {
		return nil, err
	}
	return &flashChips[idx+offset], nil
}

// selectVariant runs the given selector against transport and returns the
// index offset (0 or 1) it contributes into the descriptor table.
func selectVariant(ctx context.Context, t Transport, s Selector) (int, error) {
	switch s {
	case SelectNone:
		return 0, nil
	case SelectPowerTwo:
		resp, err := t.SendMessage(ctx, []byte{cmdReadStatusAtmel}, 1)
		if err != nil {
			return 0, err
		}
		if resp[0]&0x01 != 0 {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, nil
	}
}
