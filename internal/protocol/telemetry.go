package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Orientation is the cube's attitude in space as reported by its gyroscope.
type Orientation struct {
	X, Y, Z, W float64 // Normalised quaternion

	Up    byte // Notation letter of the face pointing up
	Front byte // Notation letter of the face pointing at the solver
}

// OfflineStats are the counters the cube keeps while not connected.
type OfflineStats struct {
	Moves   int
	Seconds int
	Solves  int
}

// DecodeCubeType returns "edge" for the GoCube Edge and "standard" otherwise.
func DecodeCubeType(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", fmt.Errorf("cube type payload too short")
	}
	if payload[0] == 0x01 {
		return "edge", nil
	}
	return "standard", nil
}

// DecodeOrientation decodes an ASCII quaternion payload "x#y#z#w".
// Anything after the numeric part of w is ignored.
func DecodeOrientation(payload []byte) (Orientation, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return Orientation{}, fmt.Errorf("orientation payload must have 4 parts, got %d", len(parts))
	}
	parts[3] = leadingNumber(parts[3])

	var q [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Orientation{}, fmt.Errorf("orientation component %d: %w", i, err)
		}
		q[i] = v
	}

	mag := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if mag == 0 {
		return Orientation{}, fmt.Errorf("orientation quaternion is zero")
	}
	x, y, z, w := q[0]/mag, q[1]/mag, q[2]/mag, q[3]/mag

	// Device frame: +Y is up, +Z faces the solver, +X points right.
	up := [3]float64{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x)}
	front := [3]float64{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y)}

	return Orientation{
		X: x, Y: y, Z: z, W: w,
		Up:    nearestFace(up),
		Front: nearestFace(front),
	}, nil
}

// nearestFace returns the face letter whose normal is closest to v.
func nearestFace(v [3]float64) byte {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	switch {
	case ay >= ax && ay >= az:
		if v[1] > 0 {
			return 'U'
		}
		return 'D'
	case az >= ax:
		if v[2] > 0 {
			return 'F'
		}
		return 'B'
	case v[0] > 0:
		return 'R'
	default:
		return 'L'
	}
}

// leadingNumber returns the longest prefix of s that looks like a decimal number.
func leadingNumber(s string) string {
	for i, r := range s {
		if (r == '-' && i == 0) || r == '.' || (r >= '0' && r <= '9') {
			continue
		}
		return s[:i]
	}
	return s
}

// DecodeOfflineStats decodes an ASCII payload "moves#seconds#solves".
func DecodeOfflineStats(payload []byte) (OfflineStats, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 3 {
		return OfflineStats{}, fmt.Errorf("offline stats payload must have 3 parts, got %d", len(parts))
	}

	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return OfflineStats{}, fmt.Errorf("offline stats field %d: %w", i, err)
		}
		n[i] = v
	}
	return OfflineStats{Moves: n[0], Seconds: n[1], Solves: n[2]}, nil
}
