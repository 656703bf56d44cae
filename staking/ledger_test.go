// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/stakepool"
	"github.com/vechain/stakepool/test/datagen"
)

const (
	idx90  = 0
	idx180 = 1
	idx360 = 2
)

func TestStake(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.True(t, rec.Active)
	assert.Equal(t, big.NewInt(1000), rec.Principal)
	assert.Equal(t, clock.Now(), rec.StartTime)
	assert.Equal(t, rec.StartTime+90*stakepool.DaySeconds, rec.MaturityTime)
	assert.Equal(t, rec.LockSeconds, rec.MaturityTime-rec.StartTime)
	assert.Equal(t, uint32(90), rec.LockDays)
	assert.Equal(t, uint32(10), rec.Percentage)
	assert.Equal(t, int64(0), rec.TotalClaimed.Int64())
	assert.Equal(t, clock.Now(), rec.LastClaimTime)

	// principal was pulled into the pool
	require.Len(t, token.pulls, 1)
	assert.Equal(t, account, token.pulls[0].account)
	assert.Equal(t, big.NewInt(1000), token.pulls[0].amount)

	assert.Equal(t, 1, ledger.ParticipantCount())
	assert.Equal(t, 1, ledger.ActiveCount())
	assert.Equal(t, big.NewInt(1000), ledger.PoolTotal())
}

func TestStakePreconditions(t *testing.T) {
	ledger, _, _ := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	// already active fails, regardless of amount/schedule
	assert.ErrorIs(t, ledger.Stake(account, big.NewInt(1), idx180), ErrAlreadyStaking)
	assert.ErrorIs(t, ledger.Stake(account, big.NewInt(0), 99), ErrAlreadyStaking)

	other := datagen.RandAddress()
	assert.ErrorIs(t, ledger.Stake(other, big.NewInt(0), idx90), ErrInvalidAmount)
	assert.ErrorIs(t, ledger.Stake(other, big.NewInt(-5), idx90), ErrInvalidAmount)
	assert.ErrorIs(t, ledger.Stake(other, nil, idx90), ErrInvalidAmount)
	assert.ErrorIs(t, ledger.Stake(other, big.NewInt(10), 3), ErrIndexOutOfRange)

	require.NoError(t, ledger.Registry().Disable(operator, idx180))
	assert.ErrorIs(t, ledger.Stake(other, big.NewInt(10), idx180), ErrScheduleDisabled)

	// failed stakes left no partial state behind
	_, ok := ledger.GetRecord(other)
	assert.False(t, ok)
	assert.Equal(t, 1, ledger.ParticipantCount())
	assert.Equal(t, big.NewInt(1000), ledger.PoolTotal())
}

func TestStakeTransferFailureRollsBack(t *testing.T) {
	ledger, token, _ := newTestLedger()
	account := datagen.RandAddress()
	token.failPull = true

	amount := big.NewInt(int64(datagen.RandIntN(1_000_000) + 1))
	err := ledger.Stake(account, amount, idx90)
	assert.ErrorIs(t, err, ErrTransferFailed)

	_, ok := ledger.GetRecord(account)
	assert.False(t, ok)
	assert.Equal(t, 0, ledger.ParticipantCount())
	assert.Equal(t, 0, ledger.ActiveCount())
	assert.Equal(t, int64(0), ledger.PoolTotal().Int64())
}

func TestUnstake(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	// before maturity
	_, err := ledger.Unstake(account)
	assert.ErrorIs(t, err, ErrLockNotMatured)
	clock.AdvanceDays(89)
	_, err = ledger.Unstake(account)
	assert.ErrorIs(t, err, ErrLockNotMatured)

	// at maturity exactly
	clock.AdvanceDays(1)
	principal, err := ledger.Unstake(account)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), principal)
	assert.Equal(t, account, token.lastPush().account)
	assert.Equal(t, big.NewInt(1000), token.lastPush().amount)

	// record is indistinguishable from a never-staked account
	_, ok := ledger.GetRecord(account)
	assert.False(t, ok)
	assert.Equal(t, int64(0), ledger.PoolTotal().Int64())
	assert.Equal(t, 0, ledger.ActiveCount())

	// the roster keeps the historical entry
	assert.Equal(t, 1, ledger.ParticipantCount())

	// unstaking again fails
	_, err = ledger.Unstake(account)
	assert.ErrorIs(t, err, ErrNotStaking)
}

func TestUnstakeNotStaking(t *testing.T) {
	ledger, _, _ := newTestLedger()

	_, err := ledger.Unstake(datagen.RandAddress())
	assert.ErrorIs(t, err, ErrNotStaking)
}

func TestUnstakeTransferFailureRollsBack(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	clock.AdvanceDays(90)

	token.failPush = true
	_, err := ledger.Unstake(account)
	assert.ErrorIs(t, err, ErrTransferFailed)

	// record restored, aggregates unchanged
	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(1000), rec.Principal)
	assert.Equal(t, big.NewInt(1000), ledger.PoolTotal())
	assert.Equal(t, 1, ledger.ActiveCount())
}

func TestRestake(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	// accumulate some claims, then mature
	clock.AdvanceDays(2)
	_, err := ledger.ClaimReward(account)
	require.NoError(t, err)
	clock.AdvanceDays(88)

	require.NoError(t, ledger.Restake(account, idx360))

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(1000), rec.Principal)
	assert.Equal(t, clock.Now(), rec.StartTime)
	assert.Equal(t, clock.Now()+360*stakepool.DaySeconds, rec.MaturityTime)
	assert.Equal(t, uint32(360), rec.LockDays)
	assert.Equal(t, uint32(40), rec.Percentage)
	assert.Equal(t, int64(0), rec.TotalClaimed.Int64())
	assert.Equal(t, clock.Now(), rec.LastClaimTime)

	// no value transfer happened: one pull from the stake, one push from the claim
	assert.Len(t, token.pulls, 1)
	assert.Len(t, token.pushes, 1)

	// restake does not append to the roster
	assert.Equal(t, 1, ledger.ParticipantCount())
	assert.Equal(t, big.NewInt(1000), ledger.PoolTotal())
}

func TestRestakePreconditions(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	assert.ErrorIs(t, ledger.Restake(account, idx90), ErrNotStaking)

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	assert.ErrorIs(t, ledger.Restake(account, idx90), ErrLockNotMatured)

	clock.AdvanceDays(90)
	assert.ErrorIs(t, ledger.Restake(account, 5), ErrIndexOutOfRange)

	require.NoError(t, ledger.Registry().Disable(operator, idx90))
	assert.ErrorIs(t, ledger.Restake(account, idx90), ErrScheduleDisabled)

	// failed restakes leave the record untouched
	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, uint64(1), rec.StartTime)
}

func TestRestakeAfterUnstake(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	clock.AdvanceDays(90)
	_, err := ledger.Unstake(account)
	require.NoError(t, err)

	assert.ErrorIs(t, ledger.Restake(account, idx90), ErrNotStaking)
}

func TestClaimReward(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	// less than one full day: nothing to claim
	clock.Advance(stakepool.DaySeconds - 1)
	_, err := ledger.ClaimReward(account)
	assert.ErrorIs(t, err, ErrNoRewardAvailable)

	// after exactly 2 full days: dailyRate(1000, 90, 10) = 1 per day
	clock.Advance(stakepool.DaySeconds + 1)
	reward, err := ledger.ClaimReward(account)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), reward)
	assert.Equal(t, account, token.lastPush().account)
	assert.Equal(t, big.NewInt(2), token.lastPush().amount)

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(2), rec.TotalClaimed)
	assert.Equal(t, clock.Now(), rec.LastClaimTime)

	// immediately claiming again finds nothing
	_, err = ledger.ClaimReward(account)
	assert.ErrorIs(t, err, ErrNoRewardAvailable)

	// totalClaimed accumulates across claims
	clock.AdvanceDays(3)
	reward, err = ledger.ClaimReward(account)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3), reward)
	rec, _ = ledger.GetRecord(account)
	assert.Equal(t, big.NewInt(5), rec.TotalClaimed)
}

func TestClaimRewardPreconditions(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	_, err := ledger.ClaimReward(account)
	assert.ErrorIs(t, err, ErrNotStaking)

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	// rewards stop at maturity; the account must unstake or restake
	clock.AdvanceDays(90)
	_, err = ledger.ClaimReward(account)
	assert.ErrorIs(t, err, ErrLockMatured)
}

func TestClaimRewardTransferFailureRollsBack(t *testing.T) {
	ledger, token, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	clock.AdvanceDays(2)

	token.failPush = true
	_, err := ledger.ClaimReward(account)
	assert.ErrorIs(t, err, ErrTransferFailed)

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, int64(0), rec.TotalClaimed.Int64())
	assert.Equal(t, uint64(1), rec.LastClaimTime)

	// the claim stays available for a retry
	token.failPush = false
	reward, err := ledger.ClaimReward(account)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), reward)
}

func TestAccruedRewardQuery(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	assert.Equal(t, int64(0), ledger.AccruedReward(account).Int64())

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	clock.AdvanceDays(2)
	assert.Equal(t, int64(2), ledger.AccruedReward(account).Int64())
}

func TestEstimateDailyRate(t *testing.T) {
	ledger, _, _ := newTestLedger()

	rate, err := ledger.EstimateDailyRate(big.NewInt(1000), idx90)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), rate)

	rate, err = ledger.EstimateDailyRate(big.NewInt(1_000_000), idx360)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1111), rate)

	_, err = ledger.EstimateDailyRate(big.NewInt(1000), 7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// a disabled schedule can still be estimated against
	require.NoError(t, ledger.Registry().Disable(operator, idx90))
	rate, err = ledger.EstimateDailyRate(big.NewInt(1000), idx90)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), rate)
}

func TestCatalogEditsAreNotRetroactive(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	require.NoError(t, ledger.Registry().Upsert(operator, 90, 50))
	require.NoError(t, ledger.Registry().Disable(operator, idx90))

	// the live record keeps the parameters copied at stake time
	clock.AdvanceDays(1)
	assert.Equal(t, int64(1), ledger.AccruedReward(account).Int64())

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, uint32(10), rec.Percentage)
}

func TestRosterKeepsDuplicates(t *testing.T) {
	ledger, _, clock := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))
	clock.AdvanceDays(90)
	_, err := ledger.Unstake(account)
	require.NoError(t, err)
	require.NoError(t, ledger.Stake(account, big.NewInt(500), idx90))

	// the roster is a historical log, not a membership set
	assert.Equal(t, 2, ledger.ParticipantCount())
	assert.Equal(t, []stakepool.Address{account, account}, ledger.Participants())

	// but duplicates never double-count principal
	assert.Equal(t, 1, ledger.ActiveCount())
	assert.Equal(t, big.NewInt(500), ledger.PoolTotal())
}

func TestPoolTotalAcrossAccounts(t *testing.T) {
	ledger, _, clock := newTestLedger()

	a := datagen.RandAddress()
	b := datagen.RandAddress()
	c := datagen.RandAddress()

	require.NoError(t, ledger.Stake(a, big.NewInt(1000), idx90))
	require.NoError(t, ledger.Stake(b, big.NewInt(250), idx180))
	require.NoError(t, ledger.Stake(c, big.NewInt(50), idx360))
	assert.Equal(t, big.NewInt(1300), ledger.PoolTotal())
	assert.Equal(t, 3, ledger.ActiveCount())
	assert.Equal(t, 3, ledger.ParticipantCount())

	clock.AdvanceDays(90)
	_, err := ledger.Unstake(a)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(300), ledger.PoolTotal())
	assert.Equal(t, 2, ledger.ActiveCount())
	assert.Equal(t, 3, ledger.ParticipantCount())
}

func TestGetRecordIsSnapshot(t *testing.T) {
	ledger, _, _ := newTestLedger()
	account := datagen.RandAddress()

	require.NoError(t, ledger.Stake(account, big.NewInt(1000), idx90))

	rec, ok := ledger.GetRecord(account)
	require.True(t, ok)
	rec.Principal.SetInt64(9999)
	rec.Active = false

	fresh, ok := ledger.GetRecord(account)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(1000), fresh.Principal)
	assert.True(t, fresh.Active)
}
