// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/vechain/stakepool/metrics"

var (
	metricOpCounter   = metrics.LazyLoadCounterVec("staking_operation_count", []string{"op", "outcome"})
	metricActiveGauge = metrics.LazyLoadGauge("staking_active_records_gauge")
	metricRosterGauge = metrics.LazyLoadGauge("staking_roster_length_gauge")
)
