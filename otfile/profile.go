// SPDX-License-Identifier: EPL-2.0

package otfile

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadSettings reads a YAML settings profile, layered over the defaults.
// Only the keys present in the file are overridden, so a profile can tweak
// a single field:
//
//	gain_db: 6
//	quantize: 32
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings profile: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings profile: %w", err)
	}

	// Tempo feeds a division when bar lengths are computed, so a zero or
	// negative value must be rejected here rather than produce a garbage
	// file later.
	if s.TempoBPM <= 0 {
		return s, fmt.Errorf("%s: %w (got %g)", path, ErrInvalidTempo, s.TempoBPM)
	}

	return s, nil
}
