// Package ble provides low-level BLE communication with GoCube devices.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/gocubie/internal/protocol"
)

// Errors
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

// BLE UUIDs
var (
	serviceUUID = mustParseUUID(protocol.ServiceUUID)
	txCharUUID  = mustParseUUID(protocol.TxCharUUID)
	rxCharUUID  = mustParseUUID(protocol.RxCharUUID)
)

func mustParseUUID(s string) bluetooth.UUID {
	u, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("ble: bad uuid %q: %v", s, err))
	}
	return u
}

// ScanResult represents a discovered GoCube device.
type ScanResult struct {
	Name    string
	UUID    string
	RSSI    int16
	Address bluetooth.Address
}

// Client manages the BLE connection to one GoCube device.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic
	log     zerolog.Logger

	mu         sync.RWMutex
	connected  bool
	deviceName string
	battery    int
	frames     protocol.Reassembler

	onMessage func(*protocol.Message)
}

// NewClient enables the default adapter and returns a client for it.
func NewClient(log zerolog.Logger) (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}

	return &Client{
		adapter: adapter,
		log:     log.With().Str("component", "ble").Logger(),
		battery: -1,
	}, nil
}

// SetMessageCallback sets the callback for incoming messages.
func (c *Client) SetMessageCallback(cb func(*protocol.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// Scan collects GoCube advertisements until timeout or ctx is done.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	c.mu.RLock()
	if c.connected {
		c.mu.RUnlock()
		return nil, ErrAlreadyConnected
	}
	c.mu.RUnlock()

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		scanErr error
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		err := c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			addr := result.Address.String()

			mu.Lock()
			defer mu.Unlock()
			if seen[addr] || !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}
			seen[addr] = true
			c.log.Debug().Str("name", name).Str("address", addr).Int16("rssi", result.RSSI).Msg("found device")
			results = append(results, ScanResult{
				Name:    name,
				UUID:    addr,
				RSSI:    result.RSSI,
				Address: result.Address,
			})
		})
		mu.Lock()
		scanErr = err
		mu.Unlock()
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}

	c.adapter.StopScan()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if scanErr != nil {
		return nil, fmt.Errorf("scan failed: %w", scanErr)
	}
	return results, nil
}

// Connect connects to a scanned device and subscribes to notifications.
func (c *Client) Connect(ctx context.Context, result ScanResult) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	c.log.Debug().Str("name", result.Name).Msg("connecting")
	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			txChar = ch
		case rxCharUUID:
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rxChar
	c.connected = true
	c.deviceName = result.Name
	c.frames.Reset()
	c.mu.Unlock()

	return c.SendCommand(protocol.CmdRequestBattery)
}

// Disconnect disconnects from the current device.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.battery = -1
	return err
}

// IsConnected returns true if connected to a device.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Battery returns the last known battery level (-1 if unknown).
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	data := protocol.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		return fmt.Errorf("write command 0x%02X: %w", cmd, err)
	}
	return nil
}

// handleNotification reassembles notifications into frames and hands each
// parsed message to the callback. Malformed frames are dropped.
func (c *Client) handleNotification(data []byte) {
	c.mu.Lock()
	frames := c.frames.Feed(data)
	c.mu.Unlock()

	for _, frame := range frames {
		msg, err := protocol.Parse(frame)
		if err != nil {
			c.log.Debug().Err(err).Hex("frame", frame).Msg("dropped frame")
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg *protocol.Message) {
	if msg.Type == protocol.MsgTypeBattery {
		if level, err := protocol.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = level
			c.mu.Unlock()
		}
	}

	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()

	if cb != nil {
		cb(msg)
	}
}
