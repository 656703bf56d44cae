// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/vechain/stakepool/stakepool"
)

// TokenTransfer moves asset balances between accounts and the pool. The
// implementation is responsible for its own balance and allowance checks; any
// returned error aborts the whole ledger operation.
type TokenTransfer interface {
	// PullFrom moves amount from the account into the pool.
	PullFrom(account stakepool.Address, amount *big.Int) error
	// PushTo moves amount from the pool back to the account.
	PushTo(account stakepool.Address, amount *big.Int) error
}

// AccessControl gates catalog mutation to the privileged operator.
type AccessControl interface {
	IsOperator(addr stakepool.Address) bool
}

// Clock supplies the current ledger time as a non-decreasing integer. It is
// read exactly once per operation.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() uint64

func (f ClockFunc) Now() uint64 { return f() }

type singleOperator stakepool.Address

// SingleOperator returns an AccessControl recognizing exactly one operator
// address.
func SingleOperator(addr stakepool.Address) AccessControl {
	return singleOperator(addr)
}

func (o singleOperator) IsOperator(addr stakepool.Address) bool {
	return stakepool.Address(o) == addr
}
