package gocubie

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/gocubie/internal/ble"
	"github.com/SeamusWaldron/gocubie/internal/protocol"
)

// DeviceInfo describes a discovered GoCube smart cube.
// Values are returned by Scan and can be passed to Connect.
type DeviceInfo struct {
	Name string // Device name (e.g., "GoCube_XXXX")
	UUID string // Device address
	RSSI int16  // Signal strength in dBm
	scan ble.ScanResult
}

// Device is a connected GoCube smart cube. Every turn of the physical cube is
// applied to the device's Tracker.
type Device struct {
	client  *ble.Client
	tracker *Tracker
	info    DeviceInfo
	log     zerolog.Logger

	mu            sync.RWMutex
	onBattery     func(int)
	onOrientation func(up, front Face)
	cubeType      string
}

// Scan discovers nearby GoCube devices. Only WithLogger applies.
//
// Ensure the cube is not connected to another device (e.g., a phone app).
func Scan(ctx context.Context, timeout time.Duration, opts ...Option) ([]DeviceInfo, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := ble.NewClient(cfg.logger)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect()

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]DeviceInfo, len(results))
	for i, r := range results {
		devices[i] = DeviceInfo{
			Name: r.Name,
			UUID: r.UUID,
			RSSI: r.RSSI,
			scan: r,
		}
	}
	return devices, nil
}

// Connect connects to a specific GoCube device. The options configure the
// device's Tracker.
func Connect(ctx context.Context, info DeviceInfo, opts ...Option) (*Device, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := ble.NewClient(cfg.logger)
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx, info.scan); err != nil {
		switch {
		case errors.Is(err, ble.ErrAlreadyConnected):
			return nil, ErrAlreadyConnected
		case errors.Is(err, context.DeadlineExceeded):
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("connect %s: %w", info.Name, err)
	}

	tracker := NewTracker(opts...)
	d := &Device{
		client:  client,
		tracker: tracker,
		info:    info,
		log:     tracker.log.With().Str("device", info.Name).Logger(),
	}
	client.SetMessageCallback(d.handleMessage)

	d.log.Info().Msg("connected")
	return d, nil
}

// ConnectFirst scans for up to 10 seconds and connects to the first GoCube found.
func ConnectFirst(ctx context.Context, opts ...Option) (*Device, error) {
	devices, err := Scan(ctx, 10*time.Second, opts...)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrDeviceNotFound
	}
	return Connect(ctx, devices[0], opts...)
}

// Close disconnects from the cube.
func (d *Device) Close() error {
	d.log.Info().Msg("disconnecting")
	return d.client.Disconnect()
}

// Tracker returns the tracker mirroring the physical cube.
func (d *Device) Tracker() *Tracker {
	return d.tracker
}

// Info returns the connected device's description.
func (d *Device) Info() DeviceInfo {
	return d.info
}

// IsConnected returns true if still connected to the cube.
func (d *Device) IsConnected() bool {
	return d.client.IsConnected()
}

// Battery returns the last known battery level (0-100), or -1 if unknown.
func (d *Device) Battery() int {
	return d.client.Battery()
}

// OnBattery sets a callback for battery level updates.
func (d *Device) OnBattery(cb func(int)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onBattery = cb
}

// OnOrientation sets a callback for changes in how the cube is held. Up and
// front are given as the cube's own faces.
func (d *Device) OnOrientation(cb func(up, front Face)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onOrientation = cb
}

// CubeType returns the model reported by the cube ("standard" or "edge"), or
// "" if it has not reported one yet.
func (d *Device) CubeType() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cubeType
}

// MarkSolved tells the cube its current state is solved and resets the tracker.
func (d *Device) MarkSolved() error {
	if err := d.client.SendCommand(protocol.CmdResetSolved); err != nil {
		if errors.Is(err, ble.ErrNotConnected) {
			return ErrNotConnected
		}
		return err
	}
	d.tracker.Reset()
	return nil
}

// FlashBacklight flashes the cube backlight.
func (d *Device) FlashBacklight() error {
	return d.client.SendCommand(protocol.CmdFlashBacklight)
}

func (d *Device) handleMessage(msg *protocol.Message) {
	d.log.Trace().
		Str("type", protocol.MessageTypeName(msg.Type)).
		Hex("payload", msg.Payload).
		Msg("frame")

	switch msg.Type {
	case protocol.MsgTypeRotation:
		d.handleRotation(msg.Payload)
	case protocol.MsgTypeBattery:
		d.handleBattery(msg.Payload)
	case protocol.MsgTypeOrientation:
		d.handleOrientation(msg.Payload)
	case protocol.MsgTypeCubeType:
		d.handleCubeType(msg.Payload)
	case protocol.MsgTypeOfflineStats:
		d.handleOfflineStats(msg.Payload)
	default:
		d.log.Debug().Str("type", protocol.MessageTypeName(msg.Type)).Msg("ignored message")
	}
}

func (d *Device) handleRotation(payload []byte) {
	rotations, err := protocol.DecodeRotation(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad rotation payload")
		return
	}

	now := time.Now()
	for _, rot := range rotations {
		move, err := rotationToMove(rot)
		if err != nil {
			d.log.Warn().Err(err).Msg("unmapped rotation")
			continue
		}
		d.tracker.Apply(move.WithTime(now))
	}
}

func (d *Device) handleBattery(payload []byte) {
	level, err := protocol.DecodeBattery(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad battery payload")
		return
	}
	d.log.Debug().Int("level", level).Msg("battery")

	d.mu.RLock()
	cb := d.onBattery
	d.mu.RUnlock()

	if cb != nil {
		cb(level)
	}
}

func (d *Device) handleOrientation(payload []byte) {
	o, err := protocol.DecodeOrientation(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad orientation payload")
		return
	}
	up, front, err := orientationFaces(o)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad orientation faces")
		return
	}

	d.mu.RLock()
	cb := d.onOrientation
	d.mu.RUnlock()

	if cb != nil {
		cb(up, front)
	}
}

// orientationFaces converts the decoded face letters to faces.
func orientationFaces(o protocol.Orientation) (up, front Face, err error) {
	if up, err = ParseFace(o.Up); err != nil {
		return Face{}, Face{}, fmt.Errorf("up %q: %w", o.Up, err)
	}
	if front, err = ParseFace(o.Front); err != nil {
		return Face{}, Face{}, fmt.Errorf("front %q: %w", o.Front, err)
	}
	return up, front, nil
}

func (d *Device) handleCubeType(payload []byte) {
	kind, err := protocol.DecodeCubeType(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad cube type payload")
		return
	}

	d.mu.Lock()
	d.cubeType = kind
	d.mu.Unlock()
	d.log.Info().Str("cube_type", kind).Msg("cube type reported")
}

func (d *Device) handleOfflineStats(payload []byte) {
	stats, err := protocol.DecodeOfflineStats(payload)
	if err != nil {
		d.log.Warn().Err(err).Msg("bad offline stats payload")
		return
	}
	d.log.Info().
		Int("moves", stats.Moves).
		Int("seconds", stats.Seconds).
		Int("solves", stats.Solves).
		Msg("offline stats")
}

// centerColorToFace maps GoCube centre colours to faces. The GoCube's red
// centre sits where this model's pink face is.
var centerColorToFace = map[string]Face{
	"white":  White(),
	"yellow": Yellow(),
	"green":  Green(),
	"blue":   Blue(),
	"red":    Pink(),
	"orange": Orange(),
}

func rotationToMove(rot protocol.RotationEvent) (Move, error) {
	face, ok := centerColorToFace[rot.Color]
	if !ok {
		return Move{}, fmt.Errorf("%w: centre colour %q", ErrInvalidFace, rot.Color)
	}
	return NewMove(face, rot.Clockwise), nil
}
