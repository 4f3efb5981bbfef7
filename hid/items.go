// Package hid builds USB HID report descriptors from typed short-form items.
package hid

import "bytes"

// Common Usage Pages.
// Values per HID Usage Tables.
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageKeyboard       uint16 = 0x07
	UsagePageLEDs           uint16 = 0x08
	UsagePageButton         uint16 = 0x09
	UsagePageConsumer       uint16 = 0x0C
)

// Generic Desktop usages.
const (
	UsagePointer  uint16 = 0x01
	UsageMouse    uint16 = 0x02
	UsageKeyboard uint16 = 0x06
)

// CollectionKind values.
type CollectionKind uint8

const (
	CollectionPhysical    CollectionKind = 0x00
	CollectionApplication CollectionKind = 0x01
	CollectionLogical     CollectionKind = 0x02
)

// MainFlags are the bit flags carried by Input/Output main items.
type MainFlags uint8

const (
	MainData  MainFlags = 0x00
	MainConst MainFlags = 0x01

	MainArray MainFlags = 0x00
	MainVar   MainFlags = 0x02

	MainAbs MainFlags = 0x00
	MainRel MainFlags = 0x04
)

// Short-item prefixes (bTag | bType), before the size bits are ORed in.
const (
	prefixInput         = 0x80
	prefixOutput        = 0x90
	prefixCollection    = 0xA0
	prefixEndCollection = 0xC0

	prefixUsagePage   = 0x04
	prefixLogicalMin  = 0x14
	prefixLogicalMax  = 0x24
	prefixReportSize  = 0x74
	prefixReportCount = 0x94

	prefixUsage    = 0x08
	prefixUsageMin = 0x18
	prefixUsageMax = 0x28
)

// Item is a single short-form report descriptor item.
type Item interface {
	encode(b *bytes.Buffer)
}

// Report is an ordered report descriptor item tree.
type Report struct {
	Items []Item
}

// Bytes encodes the report descriptor.
func (r Report) Bytes() []byte {
	var b bytes.Buffer
	for _, it := range r.Items {
		it.encode(&b)
	}
	return b.Bytes()
}

// writeShort emits one short item. Values up to 0xFF use a single data byte;
// larger values use two (little-endian). A data byte is always emitted, even
// for zero, matching the descriptors real devices report.
func writeShort(b *bytes.Buffer, prefix uint8, value uint32) {
	if value > 0xFF {
		b.WriteByte(prefix | 0x02)
		b.WriteByte(uint8(value))
		b.WriteByte(uint8(value >> 8))
		return
	}
	b.WriteByte(prefix | 0x01)
	b.WriteByte(uint8(value))
}

// UsagePage selects the usage page for subsequent items.
type UsagePage struct{ Page uint16 }

func (i UsagePage) encode(b *bytes.Buffer) { writeShort(b, prefixUsagePage, uint32(i.Page)) }

// Usage declares a usage within the current page.
type Usage struct{ Usage uint16 }

func (i Usage) encode(b *bytes.Buffer) { writeShort(b, prefixUsage, uint32(i.Usage)) }

// UsageMinimum opens a usage range.
type UsageMinimum struct{ Min uint16 }

func (i UsageMinimum) encode(b *bytes.Buffer) { writeShort(b, prefixUsageMin, uint32(i.Min)) }

// UsageMaximum closes a usage range.
type UsageMaximum struct{ Max uint16 }

func (i UsageMaximum) encode(b *bytes.Buffer) { writeShort(b, prefixUsageMax, uint32(i.Max)) }

// LogicalMinimum sets the lower bound of reported values.
type LogicalMinimum struct{ Min uint16 }

func (i LogicalMinimum) encode(b *bytes.Buffer) { writeShort(b, prefixLogicalMin, uint32(i.Min)) }

// LogicalMaximum sets the upper bound of reported values.
type LogicalMaximum struct{ Max uint16 }

func (i LogicalMaximum) encode(b *bytes.Buffer) { writeShort(b, prefixLogicalMax, uint32(i.Max)) }

// ReportSize sets the size in bits of each report field.
type ReportSize struct{ Bits uint8 }

func (i ReportSize) encode(b *bytes.Buffer) { writeShort(b, prefixReportSize, uint32(i.Bits)) }

// ReportCount sets the number of report fields.
type ReportCount struct{ Count uint16 }

func (i ReportCount) encode(b *bytes.Buffer) { writeShort(b, prefixReportCount, uint32(i.Count)) }

// Input declares an input main item with the given flags.
type Input struct{ Flags MainFlags }

func (i Input) encode(b *bytes.Buffer) { writeShort(b, prefixInput, uint32(i.Flags)) }

// Output declares an output main item with the given flags.
type Output struct{ Flags MainFlags }

func (i Output) encode(b *bytes.Buffer) { writeShort(b, prefixOutput, uint32(i.Flags)) }

// Collection declares a collection containing nested items. The matching
// End Collection item is emitted automatically.
type Collection struct {
	Kind  CollectionKind
	Items []Item
}

func (c Collection) encode(b *bytes.Buffer) {
	writeShort(b, prefixCollection, uint32(c.Kind))
	for _, it := range c.Items {
		it.encode(b)
	}
	b.WriteByte(prefixEndCollection)
}
