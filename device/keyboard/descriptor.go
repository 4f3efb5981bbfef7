package keyboard

import "github.com/leongb88/scrcpy/hid"

// Boot keyboard report descriptor (63 bytes once encoded).
//
// The specification is available here:
// <https://www.usb.org/sites/default/files/hid1_11.pdf>
//
// In particular, read:
//   - 6.2.2 Report Descriptor
//   - Appendix B.1 Protocol 1 (Keyboard)
//   - Appendix C: Keyboard Implementation
//
// You can compare against a physical keyboard with:
//
//	sudo usbhid-dump -m vid:pid -e descriptor
var reportDescriptor = hid.Report{
	Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageKeyboard},
		hid.Collection{
			Kind: hid.CollectionApplication,
			Items: []hid.Item{
				// Modifier byte: 8 x 1-bit fields, usages 0xE0-0xE7
				hid.UsagePage{Page: hid.UsagePageKeyboard},
				hid.UsageMinimum{Min: KeyLeftCtrl},
				hid.UsageMaximum{Max: KeyRightGUI},
				hid.LogicalMinimum{Min: 0},
				hid.LogicalMaximum{Max: 1},
				hid.ReportSize{Bits: 1},
				hid.ReportCount{Count: 8},
				hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},

				// Reserved byte
				hid.ReportSize{Bits: 8},
				hid.ReportCount{Count: 1},
				hid.Input{Flags: hid.MainConst},

				// LED output report (5 bits + 3 bits padding)
				hid.UsagePage{Page: hid.UsagePageLEDs},
				hid.UsageMinimum{Min: 0x01},
				hid.UsageMaximum{Max: 0x05},
				hid.ReportSize{Bits: 1},
				hid.ReportCount{Count: 5},
				hid.Output{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
				hid.ReportSize{Bits: 3},
				hid.ReportCount{Count: 1},
				hid.Output{Flags: hid.MainConst},

				// Key array: 6 x 8-bit usage codes in [0, KeyCount)
				hid.UsagePage{Page: hid.UsagePageKeyboard},
				hid.UsageMinimum{Min: 0},
				hid.UsageMaximum{Max: KeyCount - 1},
				hid.LogicalMinimum{Min: 0},
				hid.LogicalMaximum{Max: KeyCount - 1},
				hid.ReportSize{Bits: 8},
				hid.ReportCount{Count: MaxKeys},
				hid.Input{Flags: hid.MainData | hid.MainArray},
			},
		},
	},
}

var reportDescBytes = reportDescriptor.Bytes()

// ReportDescriptor returns the boot keyboard report descriptor registered
// with the accessory. The returned slice is shared and must not be modified.
func ReportDescriptor() []byte {
	return reportDescBytes
}
