// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/vechain/stakepool/stakepool"
)

// DailyRate returns the reward paid per full elapsed day:
//
//	floor(floor(principal * percentage / 100) / lockDays)
//
// The percentage cut is truncated before the per-day division. The two
// sequential truncations are deliberate; a single combined division would
// overpay for some inputs.
func DailyRate(principal *big.Int, lockDays, percentage uint32) *big.Int {
	rate := new(big.Int)
	if principal == nil || principal.Sign() <= 0 || lockDays == 0 {
		return rate
	}
	rate.Mul(principal, new(big.Int).SetUint64(uint64(percentage)))
	rate.Div(rate, new(big.Int).SetUint64(stakepool.PercentDivisor))
	return rate.Div(rate, new(big.Int).SetUint64(uint64(lockDays)))
}

// AccruedReward returns the reward accrued by the record at the given time:
// the number of whole days elapsed since the last claim times the daily rate.
// It yields zero for an inactive or matured record, and zero when fewer than
// a full day has elapsed. Sub-day remainders carry over only through
// LastClaimTime.
func AccruedReward(record *Record, now uint64) *big.Int {
	if record.IsEmpty() || record.Matured(now) || now < record.LastClaimTime {
		return new(big.Int)
	}
	elapsedDays := (now - record.LastClaimTime) / stakepool.DaySeconds
	if elapsedDays == 0 {
		return new(big.Int)
	}
	rate := DailyRate(record.Principal, record.LockDays, record.Percentage)
	return rate.Mul(rate, new(big.Int).SetUint64(elapsedDays))
}
