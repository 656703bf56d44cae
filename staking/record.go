// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "math/big"

// Record is a single account's live staking position. Schedule parameters are
// copied in at stake/restake time; later catalog edits never affect a live
// record.
type Record struct {
	Principal     *big.Int // staked amount, asset minor units
	StartTime     uint64   // clock value when the current lock started
	MaturityTime  uint64   // StartTime + LockSeconds
	LockSeconds   uint64
	LockDays      uint32
	Percentage    uint32
	TotalClaimed  *big.Int // rewards paid out during the current lock
	LastClaimTime uint64
	Active        bool
}

// IsEmpty returns whether the record can be treated as the inactive sentinel.
func (r *Record) IsEmpty() bool {
	return r == nil || !r.Active
}

// Matured returns whether the lock has matured at the given time.
func (r *Record) Matured(now uint64) bool {
	return now >= r.MaturityTime
}

func (r *Record) clone() *Record {
	c := *r
	c.Principal = new(big.Int).Set(r.Principal)
	c.TotalClaimed = new(big.Int).Set(r.TotalClaimed)
	return &c
}
