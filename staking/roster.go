// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/vechain/stakepool/stakepool"
)

// roster is the append-only log of accounts that have ever staked, plus the
// running pool aggregates. It is a historical log, not a membership set: an
// account that unstakes and stakes again appears twice.
type roster struct {
	entries []stakepool.Address

	pool   *big.Int // sum of principal over live records
	active int      // number of live records
}

func newRoster() *roster {
	return &roster{pool: new(big.Int)}
}

func (r *roster) onStake(account stakepool.Address, principal *big.Int) {
	r.entries = append(r.entries, account)
	r.pool.Add(r.pool, principal)
	r.active++
}

// undoStake reverts the most recent onStake. Only valid while the stake
// operation that appended the entry is still in flight.
func (r *roster) undoStake(principal *big.Int) {
	r.entries = r.entries[:len(r.entries)-1]
	r.pool.Sub(r.pool, principal)
	r.active--
}

func (r *roster) onUnstake(principal *big.Int) {
	r.pool.Sub(r.pool, principal)
	r.active--
}

func (r *roster) undoUnstake(principal *big.Int) {
	r.pool.Add(r.pool, principal)
	r.active++
}

// count is the historical roster length, not the live staker count.
func (r *roster) count() int {
	return len(r.entries)
}

func (r *roster) poolTotal() *big.Int {
	return new(big.Int).Set(r.pool)
}

func (r *roster) participants() []stakepool.Address {
	list := make([]stakepool.Address, len(r.entries))
	copy(list, r.entries)
	return list
}
