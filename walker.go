package gordon

import "iter"

// walk validates the byte range [addr, addr+length) against the descriptor's
// capacity and region layout, then returns a pure iterator yielding
// (blockAddr, bytesUsed) for every erase block the range covers, in
// ascending address order. The sequence is fully validated before the first
// value is produced: a Misaligned or OutOfRange error is returned
// immediately, not discovered partway through iteration.
func walk(d *ChipDescriptor, addr, length uint32) (iter.Seq2[uint32, uint32], error) {
	capacity := d.Capacity()
	if addr+length > capacity || addr+length < addr {
		return nil, &OutOfRangeError{Addr: addr, Len: length, Capacity: capacity}
	}

	regions := d.regions()
	ri, remainingInRegion := 0, regions[0].Count
	cumulative := uint32(0)

	for ri < len(regions) && cumulative < addr {
		if remainingInRegion == 0 {
			ri++
			remainingInRegion = regions[ri].Count
		}
		cumulative += regions[ri].Size
		remainingInRegion--
	}
	if cumulative != addr {
		lo := cumulative - regions[ri].Size
		return nil, &MisalignedError{Lo: lo, Hi: cumulative}
	}

	end := addr + length
	seq := func(yield func(uint32, uint32) bool) {
		ri, remainingInRegion, cumulative := ri, remainingInRegion, cumulative
		remaining := length
		for ri < len(regions) && cumulative < end {
			if remainingInRegion == 0 {
				ri++
				remainingInRegion = regions[ri].Count
			}
			size := regions[ri].Size
			used := size
			if remaining < size {
				used = remaining
			}
			if !yield(cumulative, used) {
				return
			}
			cumulative += size
			remaining -= used
			remainingInRegion--
		}
	}
	return seq, nil
}
