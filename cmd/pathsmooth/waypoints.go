package main

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"honnef.co/go/pathsmooth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// waypoint is the JSON form of a point. It decodes from either an [x, y, z]
// triple or an object with x, y and z fields, and always encodes as a triple.
type waypoint pathsmooth.Point

func (w *waypoint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var xyz []float64
		if err := json.Unmarshal(data, &xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("waypoint has %d coordinates, want 3", len(xyz))
		}
		*w = waypoint{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		return nil
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
		Z *float64 `json:"z"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.X == nil || obj.Z == nil {
		return fmt.Errorf("waypoint %s lacks x or z", data)
	}
	*w = waypoint{X: *obj.X, Z: *obj.Z}
	if obj.Y != nil {
		w.Y = *obj.Y
	}
	return nil
}

func (w waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{w.X, w.Y, w.Z})
}

// readWaypoints decodes a JSON array of waypoints.
func readWaypoints(r io.Reader) (pathsmooth.Polyline, error) {
	var ws []waypoint
	if err := json.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("decoding waypoints: %w", err)
	}
	out := make(pathsmooth.Polyline, len(ws))
	for i, w := range ws {
		out[i] = pathsmooth.Point(w)
	}
	return out, nil
}

// writeWaypoints encodes points as a JSON array of triples, followed by a
// newline.
func writeWaypoints(w io.Writer, points pathsmooth.Polyline) error {
	ws := make([]waypoint, len(points))
	for i, p := range points {
		ws[i] = waypoint(p)
	}
	return json.NewEncoder(w).Encode(ws)
}
