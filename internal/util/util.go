package util

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrInvalidPolyline is returned for truncated or corrupt encoded polylines.
var ErrInvalidPolyline = errors.New("invalid encoded polyline")

// polylinePrecision is the coordinate scale of Google encoded polylines (5 decimal places).
const polylinePrecision = 1e5

// DecodePolyline decodes a Google encoded polyline into a line string. Points are [lng, lat].
func DecodePolyline(encoded string) (orb.LineString, error) {
	line := orb.LineString{}

	var lat, lng int64
	for i := 0; i < len(encoded); {
		dLat, next, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		i = next

		lat += dLat
		lng += dLng
		line = append(line, orb.Point{float64(lng) / polylinePrecision, float64(lat) / polylinePrecision})
	}

	return line, nil
}

// decodeValue reads one zig-zag encoded varint of 5-bit chunks starting at i.
func decodeValue(encoded string, i int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if i >= len(encoded) {
			return 0, i, errors.WithStack(ErrInvalidPolyline)
		}

		b := int64(encoded[i]) - 63
		i++
		if b < 0 || shift > 60 {
			return 0, i, errors.WithStack(ErrInvalidPolyline)
		}

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}

	return result >> 1, i, nil
}

// FormatClock formats a duration the way race results are shown (e.g. "25:03", "1:02:03").
func FormatClock(duration time.Duration) string {
	duration = duration.Round(time.Second)

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60
	s := int(duration.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}
