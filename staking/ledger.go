// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/stakepool"
)

var logger = log.WithContext("pkg", "staking")

// SetLogger overrides the package logger.
func SetLogger(l log.Logger) {
	logger = l
}

// Ledger is the per-account staking record state machine. Each account holds
// at most one live record at a time; every mutating operation is
// all-or-nothing, reads the clock once, and drives at most one external value
// transfer.
//
// The ledger performs no locking of its own; it assumes the host serializes
// operations. Record state is written before the transfer collaborator is
// invoked, so a transfer that reenters the ledger observes the post-operation
// state; a failed transfer rolls the mutation back.
type Ledger struct {
	registry *Registry
	token    TokenTransfer
	clock    Clock

	records map[stakepool.Address]*Record
	roster  *roster
}

// NewLedger creates a ledger using the given schedule catalog and
// collaborators.
func NewLedger(registry *Registry, token TokenTransfer, clock Clock) *Ledger {
	return &Ledger{
		registry: registry,
		token:    token,
		clock:    clock,
		records:  make(map[stakepool.Address]*Record),
		roster:   newRoster(),
	}
}

// Registry returns the schedule catalog backing the ledger.
func (l *Ledger) Registry() *Registry {
	return l.registry
}

// Stake locks amount against the schedule at scheduleIndex and creates the
// account's live record. The amount is pulled from the account into the pool.
func (l *Ledger) Stake(account stakepool.Address, amount *big.Int, scheduleIndex int) error {
	now := l.clock.Now()
	logger.Debug("staking", "account", account, "amount", amount, "schedule", scheduleIndex)

	if rec := l.records[account]; !rec.IsEmpty() {
		return l.fail("stake", ErrAlreadyStaking)
	}
	if amount == nil || amount.Sign() <= 0 {
		return l.fail("stake", ErrInvalidAmount)
	}
	sched, err := l.registry.Get(scheduleIndex)
	if err != nil {
		return l.fail("stake", err)
	}
	if !sched.Enabled {
		return l.fail("stake", ErrScheduleDisabled)
	}

	rec := &Record{
		Principal:     new(big.Int).Set(amount),
		StartTime:     now,
		MaturityTime:  now + sched.LockSeconds,
		LockSeconds:   sched.LockSeconds,
		LockDays:      sched.LockDays,
		Percentage:    sched.Percentage,
		TotalClaimed:  new(big.Int),
		LastClaimTime: now,
		Active:        true,
	}
	l.records[account] = rec
	l.roster.onStake(account, rec.Principal)

	if err := l.token.PullFrom(account, rec.Principal); err != nil {
		delete(l.records, account)
		l.roster.undoStake(rec.Principal)
		return l.fail("stake", errors.WithMessage(ErrTransferFailed, err.Error()))
	}

	l.done("stake")
	logger.Info("staked", "account", account, "amount", amount, "maturity", rec.MaturityTime)
	return nil
}

// Unstake returns the matured principal to the account and resets its record
// to the inactive sentinel.
func (l *Ledger) Unstake(account stakepool.Address) (*big.Int, error) {
	now := l.clock.Now()
	logger.Debug("unstaking", "account", account)

	rec := l.records[account]
	if rec.IsEmpty() {
		return nil, l.fail("unstake", ErrNotStaking)
	}
	if !rec.Matured(now) {
		return nil, l.fail("unstake", ErrLockNotMatured)
	}

	principal := rec.Principal
	delete(l.records, account)
	l.roster.onUnstake(principal)

	if err := l.token.PushTo(account, principal); err != nil {
		l.records[account] = rec
		l.roster.undoUnstake(principal)
		return nil, l.fail("unstake", errors.WithMessage(ErrTransferFailed, err.Error()))
	}

	l.done("unstake")
	logger.Info("unstaked", "account", account, "principal", principal)
	return new(big.Int).Set(principal), nil
}

// Restake re-parameterizes the account's matured record in place against the
// schedule at scheduleIndex. The principal stays pooled; no transfer occurs.
func (l *Ledger) Restake(account stakepool.Address, scheduleIndex int) error {
	now := l.clock.Now()
	logger.Debug("restaking", "account", account, "schedule", scheduleIndex)

	rec := l.records[account]
	if rec.IsEmpty() {
		return l.fail("restake", ErrNotStaking)
	}
	if !rec.Matured(now) {
		return l.fail("restake", ErrLockNotMatured)
	}
	sched, err := l.registry.Get(scheduleIndex)
	if err != nil {
		return l.fail("restake", err)
	}
	if !sched.Enabled {
		return l.fail("restake", ErrScheduleDisabled)
	}

	rec.StartTime = now
	rec.MaturityTime = now + sched.LockSeconds
	rec.LockSeconds = sched.LockSeconds
	rec.LockDays = sched.LockDays
	rec.Percentage = sched.Percentage
	rec.TotalClaimed = new(big.Int)
	rec.LastClaimTime = now

	l.done("restake")
	logger.Info("restaked", "account", account, "principal", rec.Principal, "maturity", rec.MaturityTime)
	return nil
}

// ClaimReward pays out the reward accrued since the last claim. Rewards are
// claimable only before maturity; after maturity the account must unstake or
// restake.
func (l *Ledger) ClaimReward(account stakepool.Address) (*big.Int, error) {
	now := l.clock.Now()
	logger.Debug("claiming reward", "account", account)

	rec := l.records[account]
	if rec.IsEmpty() {
		return nil, l.fail("claim", ErrNotStaking)
	}
	if rec.Matured(now) {
		return nil, l.fail("claim", ErrLockMatured)
	}

	reward := AccruedReward(rec, now)
	if reward.Sign() == 0 {
		return nil, l.fail("claim", ErrNoRewardAvailable)
	}

	prevClaimed := rec.TotalClaimed
	prevClaimTime := rec.LastClaimTime
	rec.TotalClaimed = new(big.Int).Add(prevClaimed, reward)
	rec.LastClaimTime = now

	if err := l.token.PushTo(account, reward); err != nil {
		rec.TotalClaimed = prevClaimed
		rec.LastClaimTime = prevClaimTime
		return nil, l.fail("claim", errors.WithMessage(ErrTransferFailed, err.Error()))
	}

	l.done("claim")
	logger.Info("claimed reward", "account", account, "reward", reward)
	return reward, nil
}

//
// Query surface - no side effects
//

// GetRecord returns a snapshot of the account's live record.
func (l *Ledger) GetRecord(account stakepool.Address) (*Record, bool) {
	rec := l.records[account]
	if rec.IsEmpty() {
		return nil, false
	}
	return rec.clone(), true
}

// AccruedReward returns the reward the account could claim right now. It is
// zero for an inactive or matured record.
func (l *Ledger) AccruedReward(account stakepool.Address) *big.Int {
	return AccruedReward(l.records[account], l.clock.Now())
}

// EstimateDailyRate returns the daily rate a hypothetical principal would
// earn on the schedule at scheduleIndex. Disabled schedules can be estimated
// against; only the catalog is read.
func (l *Ledger) EstimateDailyRate(principal *big.Int, scheduleIndex int) (*big.Int, error) {
	sched, err := l.registry.Get(scheduleIndex)
	if err != nil {
		return nil, err
	}
	return DailyRate(principal, sched.LockDays, sched.Percentage), nil
}

// ParticipantCount returns the historical roster length: every stake ever
// made, duplicates included.
func (l *Ledger) ParticipantCount() int {
	return l.roster.count()
}

// ActiveCount returns the number of currently live records.
func (l *Ledger) ActiveCount() int {
	return l.roster.active
}

// PoolTotal returns the sum of principal over all live records.
func (l *Ledger) PoolTotal() *big.Int {
	return l.roster.poolTotal()
}

// Participants returns a snapshot of the roster log.
func (l *Ledger) Participants() []stakepool.Address {
	return l.roster.participants()
}

func (l *Ledger) fail(op string, err error) error {
	metricOpCounter().AddWithLabel(1, map[string]string{"op": op, "outcome": "failure"})
	logger.Info(op+" failed", "error", err)
	return err
}

func (l *Ledger) done(op string) {
	metricOpCounter().AddWithLabel(1, map[string]string{"op": op, "outcome": "success"})
	metricActiveGauge().Set(int64(l.roster.active))
	metricRosterGauge().Set(int64(l.roster.count()))
}
