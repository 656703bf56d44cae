// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "errors"

// Error kinds surfaced by catalog and ledger operations. Callers match them
// with errors.Is; wrapped variants keep the kind intact.
var (
	ErrAlreadyStaking    = errors.New("account is already staking")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrIndexOutOfRange   = errors.New("schedule index out of range")
	ErrScheduleDisabled  = errors.New("schedule is disabled")
	ErrNotStaking        = errors.New("account has no active stake")
	ErrLockNotMatured    = errors.New("lock period not matured")
	ErrLockMatured       = errors.New("lock period already matured")
	ErrNoRewardAvailable = errors.New("no reward available")
	ErrUnauthorized      = errors.New("caller is not the operator")
	ErrTransferFailed    = errors.New("transfer failed")
)
