package aoa

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/leongb88/scrcpy/internal/log"
)

// AOAv2 HID control request codes, as defined by the accessory protocol.
const (
	opRegisterHID      = 54
	opUnregisterHID    = 55
	opSetHIDReportDesc = 56
	opSendHIDEvent     = 57
)

const frameHeaderSize = 7

// Config controls low-level transport behavior such as timeouts.
type Config struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func defaultConfig() Config {
	return Config{
		DialTimeout:  3 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Client speaks the AOAv2 HID requests over a TCP stream to an accessory
// bridge.
//
// Frame format: `[op u8][accessory id u16 LE][param u16 LE][len u16 LE]
// [payload]`. The op byte is the AOAv2 bRequest value; param carries the
// request's wValue-style argument (total descriptor size for RegisterHID,
// payload offset for SetHIDReportDesc, zero otherwise). Register, unregister
// and descriptor frames are acknowledged with a single status byte (0x00 on
// success); SendHIDEvent frames are fire and forget, matching the
// unacknowledged control transfers of the USB protocol.
type Client struct {
	conn   net.Conn
	cfg    Config
	rawLog log.RawLogger

	mu sync.Mutex
}

// Dial connects to an accessory bridge with default timeouts.
func Dial(addr string) (*Client, error) {
	return DialWithConfig(addr, nil, nil)
}

// DialWithConfig connects to an accessory bridge. rawLog, when non-nil,
// receives a hex dump of every outgoing frame.
func DialWithConfig(addr string, cfg *Config, rawLog log.RawLogger) (*Client, error) {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	d := &net.Dialer{Timeout: c.DialTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial accessory bridge: %w", err)
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			slog.Warn("failed to set TCP_NODELAY", "error", err)
		}
	}
	if rawLog == nil {
		rawLog = log.NewRaw(nil)
	}
	return &Client{conn: conn, cfg: c, rawLog: rawLog}, nil
}

// NewClient wraps an existing connection, for callers that manage dialing
// themselves (and for tests over net.Pipe).
func NewClient(conn net.Conn, cfg *Config, rawLog log.RawLogger) *Client {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if rawLog == nil {
		rawLog = log.NewRaw(nil)
	}
	return &Client{conn: conn, cfg: c, rawLog: rawLog}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// RegisterHID implements Transport. It announces the function id with the
// descriptor's total size, then transfers the descriptor bytes.
func (c *Client) RegisterHID(id uint16, desc []byte) error {
	if err := c.request(opRegisterHID, id, uint16(len(desc)), nil); err != nil {
		return fmt.Errorf("register HID %d: %w", id, err)
	}
	if err := c.request(opSetHIDReportDesc, id, 0, desc); err != nil {
		return fmt.Errorf("set HID report descriptor %d: %w", id, err)
	}
	return nil
}

// UnregisterHID implements Transport.
func (c *Client) UnregisterHID(id uint16) error {
	if err := c.request(opUnregisterHID, id, 0, nil); err != nil {
		return fmt.Errorf("unregister HID %d: %w", id, err)
	}
	return nil
}

// SendHIDEvent implements Transport. The frame is written without waiting
// for an acknowledgment; a write error means the report was dropped.
func (c *Client) SendHIDEvent(ev Event) error {
	if err := c.writeFrame(opSendHIDEvent, ev.AccessoryID, 0, ev.Data); err != nil {
		return fmt.Errorf("send HID event %d: %w", ev.AccessoryID, err)
	}
	return nil
}

// request writes one frame and waits for the single status byte.
func (c *Client) request(op uint8, id, param uint16, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writeFrameLocked(op, id, param, payload); err != nil {
		return err
	}
	if c.cfg.ReadTimeout > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
	}
	var status [1]byte
	if _, err := c.conn.Read(status[:]); err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	if status[0] != 0x00 {
		return fmt.Errorf("request %d rejected: status 0x%02x", op, status[0])
	}
	return nil
}

func (c *Client) writeFrame(op uint8, id, param uint16, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeFrameLocked(op, id, param, payload)
}

func (c *Client) writeFrameLocked(op uint8, id, param uint16, payload []byte) error {
	frame := make([]byte, frameHeaderSize+len(payload))
	frame[0] = op
	binary.LittleEndian.PutUint16(frame[1:3], id)
	binary.LittleEndian.PutUint16(frame[3:5], param)
	binary.LittleEndian.PutUint16(frame[5:7], uint16(len(payload)))
	copy(frame[frameHeaderSize:], payload)

	if c.cfg.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	}
	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	c.rawLog.Log(false, frame)
	return nil
}
