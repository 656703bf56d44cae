// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/stakepool"
)

func TestDecodeCatalogConfig(t *testing.T) {
	doc := `{
		"schedules": [
			{"lockDays": 30, "percentage": 5},
			{"lockDays": 60, "percentage": 12, "disabled": true}
		]
	}`

	config, err := DecodeCatalogConfig(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, config.Schedules, 2)
	assert.Equal(t, uint32(30), config.Schedules[0].LockDays)
	assert.True(t, config.Schedules[1].Disabled)
}

func TestDecodeCatalogConfigUnknownField(t *testing.T) {
	doc := `{"schedules": [{"lockDays": 30, "percentage": 5, "lockSeconds": 100}]}`

	_, err := DecodeCatalogConfig(strings.NewReader(doc))
	assert.ErrorContains(t, err, "unable to decode catalog config")
}

func TestNewCustomRegistry(t *testing.T) {
	config := &CatalogConfig{
		Schedules: []ScheduleConfig{
			{LockDays: 30, Percentage: 5},
			{LockDays: 60, Percentage: 12, Disabled: true},
		},
	}

	r, err := NewCustomRegistry(SingleOperator(operator), config)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	sched, err := r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(30)*stakepool.DaySeconds, sched.LockSeconds)
	assert.True(t, sched.Enabled)

	sched, err = r.Get(1)
	require.NoError(t, err)
	assert.False(t, sched.Enabled)
}

func TestNewCustomRegistryValidation(t *testing.T) {
	_, err := NewCustomRegistry(SingleOperator(operator), &CatalogConfig{})
	assert.ErrorContains(t, err, "at least one schedule")

	_, err = NewCustomRegistry(SingleOperator(operator), &CatalogConfig{
		Schedules: []ScheduleConfig{{LockDays: 0, Percentage: 5}},
	})
	assert.ErrorContains(t, err, "lockDays must be a non-zero integer")

	_, err = NewCustomRegistry(SingleOperator(operator), &CatalogConfig{
		Schedules: []ScheduleConfig{
			{LockDays: 30, Percentage: 5},
			{LockDays: 30, Percentage: 7},
		},
	})
	assert.ErrorContains(t, err, "duplicated lockDays")
}
