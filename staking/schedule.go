// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/vechain/stakepool/stakepool"
)

// Schedule is one reward schedule of the catalog: a lock duration paired with
// the percentage of principal paid out over the full lock.
type Schedule struct {
	LockDays    uint32
	LockSeconds uint64 // always LockDays * DaySeconds
	Percentage  uint32
	Enabled     bool
}

func newSchedule(lockDays, percentage uint32) Schedule {
	return Schedule{
		LockDays:    lockDays,
		LockSeconds: uint64(lockDays) * stakepool.DaySeconds,
		Percentage:  percentage,
		Enabled:     true,
	}
}

// Registry is the append-only, index-addressed catalog of reward schedules.
// Entries are never removed or reordered; an index is a permanent identifier.
// Mutation is gated to the privileged operator.
type Registry struct {
	auth      AccessControl
	schedules []Schedule
}

// NewRegistry creates a catalog seeded with the default schedules.
func NewRegistry(auth AccessControl) *Registry {
	r := &Registry{auth: auth}
	for i, days := range stakepool.InitialLockDays {
		r.schedules = append(r.schedules, newSchedule(days, stakepool.InitialPercentages[i]))
	}
	return r
}

// Upsert updates the percentage of the first entry matching lockDays, or
// appends a new enabled entry when no entry matches. Only the operator may
// call it.
func (r *Registry) Upsert(caller stakepool.Address, lockDays, percentage uint32) error {
	if !r.auth.IsOperator(caller) {
		return ErrUnauthorized
	}
	if lockDays == 0 {
		return ErrInvalidAmount
	}
	for i := range r.schedules {
		if r.schedules[i].LockDays == lockDays {
			r.schedules[i].Percentage = percentage
			logger.Info("updated schedule", "index", i, "lockDays", lockDays, "percentage", percentage)
			return nil
		}
	}
	r.schedules = append(r.schedules, newSchedule(lockDays, percentage))
	logger.Info("added schedule", "index", len(r.schedules)-1, "lockDays", lockDays, "percentage", percentage)
	return nil
}

// Disable soft-deletes the entry at index. The entry stays addressable
// forever; disabling an already disabled entry fails. Only the operator may
// call it.
func (r *Registry) Disable(caller stakepool.Address, index int) error {
	if !r.auth.IsOperator(caller) {
		return ErrUnauthorized
	}
	if index < 0 || index >= len(r.schedules) {
		return ErrIndexOutOfRange
	}
	if !r.schedules[index].Enabled {
		return ErrScheduleDisabled
	}
	r.schedules[index].Enabled = false
	logger.Info("disabled schedule", "index", index, "lockDays", r.schedules[index].LockDays)
	return nil
}

// Get returns a snapshot of the entry at index.
func (r *Registry) Get(index int) (Schedule, error) {
	if index < 0 || index >= len(r.schedules) {
		return Schedule{}, ErrIndexOutOfRange
	}
	return r.schedules[index], nil
}

// List returns a snapshot of the full catalog, disabled entries included.
func (r *Registry) List() []Schedule {
	list := make([]Schedule, len(r.schedules))
	copy(list, r.schedules)
	return list
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.schedules)
}
