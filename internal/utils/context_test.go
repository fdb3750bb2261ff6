// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cash-card/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	p := &models.Principal{Username: "sarah1", Role: models.RoleCardOwner}
	ctx := WithPrincipal(context.Background(), p)

	got, ok := GetPrincipalFromContext(ctx)

	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "sarah1")

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestGetPrincipalFromContext_NilPrincipal(t *testing.T) {
	ctx := WithPrincipal(context.Background(), nil)

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestGetPrincipalFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), &models.Principal{})

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}
