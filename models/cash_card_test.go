package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashCard_AmountIsJSONNumber(t *testing.T) {
	card := CashCard{ID: 99, Amount: decimal.RequireFromString("123.45")}

	b, err := json.Marshal(card)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":99,"amount":123.45}`, string(b))
}

func TestNewCashCardRequest_Decode(t *testing.T) {
	t.Run("null id and numeric amount", func(t *testing.T) {
		var req NewCashCardRequest
		require.NoError(t, json.Unmarshal([]byte(`{"id":null,"amount":250.00}`), &req))

		assert.Nil(t, req.ID)
		require.NotNil(t, req.Amount)
		assert.True(t, decimal.NewFromInt(250).Equal(*req.Amount))
	})

	t.Run("missing amount stays nil", func(t *testing.T) {
		var req NewCashCardRequest
		require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &req))

		assert.Nil(t, req.Amount)
	})
}

func TestPrincipal_HasRole(t *testing.T) {
	p := Principal{Username: "sarah1", Role: RoleCardOwner}

	assert.True(t, p.HasRole(RoleCardOwner))
	assert.False(t, p.HasRole(RoleNonOwner))
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-17", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-17", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestIsCashCardProperty(t *testing.T) {
	assert.True(t, IsCashCardProperty("id"))
	assert.True(t, IsCashCardProperty("amount"))
	assert.False(t, IsCashCardProperty("owner"))
	assert.False(t, IsCashCardProperty("Amount"))
}
