// Package aoa carries Android Open Accessory v2 HID traffic to a device.
//
// AOAv2 lets an accessory register arbitrary HID functions with an Android
// host and then inject input reports for them. Only three operations are
// needed for that: register a report descriptor under a logical id, send
// report bytes for that id, and unregister the id again.
package aoa

// Event pairs a logical accessory function id with one outgoing HID report.
type Event struct {
	AccessoryID uint16
	Data        []byte
}

// Transport registers HID functions with the remote host and carries report
// bytes to it.
//
// Event.Data handed to SendHIDEvent belongs to the transport afterwards and
// must not be mutated by the caller; callers should pass freshly allocated
// buffers.
type Transport interface {
	// RegisterHID announces a HID function with the given report descriptor.
	RegisterHID(id uint16, desc []byte) error
	// UnregisterHID removes a previously registered HID function.
	UnregisterHID(id uint16) error
	// SendHIDEvent hands one input report to the host. Delivery is
	// best-effort: an error means the report was dropped, not queued.
	SendHIDEvent(ev Event) error
}
