// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"errors"
	"math/big"

	"github.com/vechain/stakepool/stakepool"
)

var operator = stakepool.BytesToAddress([]byte("operator"))

// manualClock is a Clock whose time only moves when a test advances it.
type manualClock struct {
	now uint64
}

func (c *manualClock) Now() uint64 { return c.now }

func (c *manualClock) Advance(d uint64) { c.now += d }

func (c *manualClock) AdvanceDays(days uint64) { c.now += days * stakepool.DaySeconds }

type transfer struct {
	account stakepool.Address
	amount  *big.Int
}

// mockToken records transfers and can be armed to fail.
type mockToken struct {
	pulls  []transfer
	pushes []transfer

	failPull bool
	failPush bool
}

func (m *mockToken) PullFrom(account stakepool.Address, amount *big.Int) error {
	if m.failPull {
		return errors.New("insufficient allowance")
	}
	m.pulls = append(m.pulls, transfer{account, new(big.Int).Set(amount)})
	return nil
}

func (m *mockToken) PushTo(account stakepool.Address, amount *big.Int) error {
	if m.failPush {
		return errors.New("pool balance too low")
	}
	m.pushes = append(m.pushes, transfer{account, new(big.Int).Set(amount)})
	return nil
}

func (m *mockToken) lastPush() transfer {
	return m.pushes[len(m.pushes)-1]
}

func newTestLedger() (*Ledger, *mockToken, *manualClock) {
	clock := &manualClock{now: 1}
	token := &mockToken{}
	registry := NewRegistry(SingleOperator(operator))
	return NewLedger(registry, token, clock), token, clock
}
