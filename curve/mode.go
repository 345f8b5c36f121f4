// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"strings"
)

// NormalMode selects how the orientation normals along a path are chosen.
type NormalMode int32

const (
	// MinimumTwist transports the normal along the path with the
	// smallest possible rotation between samples.
	MinimumTwist NormalMode = iota

	// ZUp uses the +Z axis made orthogonal to the tangent,
	// so profiles stay level as the path turns.
	ZUp

	// Stored uses the normals stored on the points, falling back
	// to [MinimumTwist] where a stored normal is unusable.
	Stored
)

var normalModeNames = []string{"minimum-twist", "z-up", "stored"}

func (m NormalMode) String() string {
	if m < 0 || int(m) >= len(normalModeNames) {
		return fmt.Sprintf("NormalMode(%d)", int32(m))
	}
	return normalModeNames[m]
}

// SetString sets the mode from its name, case-insensitively.
func (m *NormalMode) SetString(s string) error {
	for i, nm := range normalModeNames {
		if strings.EqualFold(nm, s) {
			*m = NormalMode(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type NormalMode", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m NormalMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *NormalMode) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}
