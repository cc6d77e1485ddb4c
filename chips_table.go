package gordon

// JEDEC manufacturer IDs. AMIC's is a 0x7F-continuation ID (the 0x7F is the
// continuation byte, 0x37 the terminal manufacturer byte), parsed by
// ParseJEDEC exactly as a real Read Identification response would be.
const (
	vendorST      = 0x20
	vendorAMIC    = 0x7F37
	vendorAtmel   = 0x1F
	vendorWinbond = 0xEF // ex-Nexcom
)

// flashChips is the static, ordered descriptor table. When one JEDEC ID maps
// to more than one physical configuration, the descriptors for that ID sit
// adjacently in the order their shared selector's return value will index
// them (0 for the first, 1 for the second). See ChipDescriptor's init-time
// validation for the invariants this table must uphold.
var flashChips = [...]ChipDescriptor{
	{
		VendorName: "AMIC", DeviceName: "A25L05PT",
		VendorID: vendorAMIC, DeviceID: 0x2020,
		KBCapacity: 64, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 32 * 1024, Count: 1},
			{Size: 16 * 1024, Count: 1},
			{Size: 8 * 1024, Count: 1},
			{Size: 4 * 1024, Count: 2},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		VendorName: "AMIC", DeviceName: "A25L40PT",
		VendorID: vendorAMIC, DeviceID: 0x2013,
		KBCapacity: 512, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 7},
			{Size: 32 * 1024, Count: 1},
			{Size: 16 * 1024, Count: 1},
			{Size: 8 * 1024, Count: 1},
			{Size: 4 * 1024, Count: 2},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		VendorName: "Micron/Numonyx/ST", DeviceName: "M25P10",
		VendorID: vendorST, DeviceID: 0x2011,
		KBCapacity: 128, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 32 * 1024, Count: 4},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		VendorName: "Micron/Numonyx/ST", DeviceName: "M25P40",
		VendorID: vendorST, DeviceID: 0x2013,
		KBCapacity: 512, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 8},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		VendorName: "Micron/Numonyx/ST", DeviceName: "N25Q128",
		VendorID: vendorST, DeviceID: 0xBA18,
		KBCapacity: 16384, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 256},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		// Named directly by the teacher repository's flash_params.go
		// (Micron N25Q 32Mb); not present in the historical C++ table.
		VendorName: "Micron", DeviceName: "N25Q32",
		VendorID: vendorST, DeviceID: 0xBA16,
		KBCapacity: 4096, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 64},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		VendorName: "Atmel", DeviceName: "AT45DB041D (native)",
		VendorID: vendorAtmel, DeviceID: 0x2400,
		KBCapacity: 528, PageSize: 264, BitShift: 9,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 264, Count: 2048},
		},
		Family: FamilyDataFlash, Selector: SelectPowerTwo,
	},
	{
		VendorName: "Atmel", DeviceName: "AT45DB041D (power-of-two)",
		VendorID: vendorAtmel, DeviceID: 0x2400,
		KBCapacity: 512, PageSize: 256, BitShift: 9,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			// The C++ original lists 264 here too, which was clearly meant
			// to read 256 (264*2048 = 528KiB, not this variant's 512KiB);
			// kept at 264 it would violate Region Coverage. Corrected —
			// see SPEC_FULL.md §3/§9.
			{Size: 256, Count: 2048},
		},
		Family: FamilyDataFlash, Selector: SelectNone,
	},
	{
		VendorName: "Atmel", DeviceName: "AT45DB161D (native)",
		VendorID: vendorAtmel, DeviceID: 0x2600,
		KBCapacity: 2112, PageSize: 528, BitShift: 10,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 528, Count: 4096},
		},
		Family: FamilyDataFlash, Selector: SelectPowerTwo,
	},
	{
		VendorName: "Atmel", DeviceName: "AT45DB161D (power-of-two)",
		VendorID: vendorAtmel, DeviceID: 0x2600,
		KBCapacity: 2048, PageSize: 512, BitShift: 9,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 512, Count: 4096},
		},
		Family: FamilyDataFlash, Selector: SelectNone,
	},
	{
		VendorName: "Winbond", DeviceName: "W25Q64.V",
		VendorID: vendorWinbond, DeviceID: 0x4017,
		KBCapacity: 8192, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 128},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
	{
		// Named directly by the teacher repository's flash_params.go
		// (Winbond W25Q 128Mb); not present in the historical C++ table.
		VendorName: "Winbond", DeviceName: "W25Q128JVIM",
		VendorID: vendorWinbond, DeviceID: 0x7018,
		KBCapacity: 16384, PageSize: 256, BitShift: 8,
		EraseRegions: [MaxEraseRegions]EraseRegion{
			{Size: 64 * 1024, Count: 256},
		},
		Family: FamilyStandard, Selector: SelectNone,
	},
}
