// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

// Constants of the staking ledger.
const (
	// DaySeconds number of clock units in one accrual day.
	DaySeconds uint64 = 86400

	// PercentDivisor divisor applied to the schedule percentage cut.
	PercentDivisor uint64 = 100
)

// Parameters of the default schedule catalog.
var (
	InitialLockDays    = []uint32{90, 180, 360}
	InitialPercentages = []uint32{10, 20, 40}
)
