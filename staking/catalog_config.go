// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"encoding/json"
	"fmt"
	"io"
)

// CatalogConfig is a user customized schedule catalog.
type CatalogConfig struct {
	Schedules []ScheduleConfig `json:"schedules"`
}

// ScheduleConfig is one catalog entry of a customized catalog.
type ScheduleConfig struct {
	LockDays   uint32 `json:"lockDays"`
	Percentage uint32 `json:"percentage"`
	Disabled   bool   `json:"disabled,omitempty"`
}

// DecodeCatalogConfig decodes a JSON catalog document.
func DecodeCatalogConfig(r io.Reader) (*CatalogConfig, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var config CatalogConfig
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("unable to decode catalog config: %w", err)
	}
	return &config, nil
}

// NewCustomRegistry creates a catalog seeded from a customized config instead
// of the default schedules. Entries keep the document order; indices are
// permanent from then on.
func NewCustomRegistry(auth AccessControl, config *CatalogConfig) (*Registry, error) {
	if len(config.Schedules) == 0 {
		return nil, fmt.Errorf("schedules: at least one schedule must be set")
	}

	r := &Registry{auth: auth}
	for i, sc := range config.Schedules {
		if sc.LockDays == 0 {
			return nil, fmt.Errorf("schedules[%d]: lockDays must be a non-zero integer", i)
		}
		for _, prev := range r.schedules {
			if prev.LockDays == sc.LockDays {
				return nil, fmt.Errorf("schedules[%d]: duplicated lockDays %d", i, sc.LockDays)
			}
		}
		sched := newSchedule(sc.LockDays, sc.Percentage)
		sched.Enabled = !sc.Disabled
		r.schedules = append(r.schedules, sched)
	}
	return r, nil
}
