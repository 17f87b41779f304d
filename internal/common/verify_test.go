package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	restore := DisableVerifications()
	defer restore()

	called := false
	Verify(func() { called = true })
	assert.False(t, called, "verification ran while disabled")

	restoreAll := EnableAllVerifications()
	Verify(func() { called = true })
	restoreAll()
	assert.True(t, called, "verification did not run while enabled")
}

func TestIsVerificationEnabled(t *testing.T) {
	testCases := []struct {
		name   string
		env    VerificationType
		check  VerificationType
		expect bool
	}{
		{name: "all enables assert", env: EnvVerifyValueAll, check: EnvVerifyValueAssert, expect: true},
		{name: "assert enables assert", env: EnvVerifyValueAssert, check: EnvVerifyValueAssert, expect: true},
		{name: "case insensitive", env: "ASSERT", check: EnvVerifyValueAssert, expect: true},
		{name: "unknown value", env: "none", check: EnvVerifyValueAssert, expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restore := EnableVerifications(tc.env)
			defer restore()
			require.Equal(t, tc.expect, IsVerificationEnabled(tc.check))
		})
	}
}

func TestAssert(t *testing.T) {
	require.NotPanics(t, func() { Assert(true, "never") })
	require.PanicsWithValue(t, "assertion failed: bad value 7", func() {
		Assert(false, "bad value %d", 7)
	})
}

func TestPlatformConstants(t *testing.T) {
	require.Equal(t, PointerSize*8, PtrdiffBits)
	require.Less(t, MinPtrdiff, 0)
	require.Greater(t, MaxPtrdiff, 0)
	require.Positive(t, GetPagesize())
}

// Ensure the setting is taken from the enable/disable helpers, not from
// re-reading the environment on every call.
func TestVerify_EnvReadOnce(t *testing.T) {
	restore := DisableVerifications()
	defer restore()

	t.Setenv(EnvVerify, string(EnvVerifyValueAll))
	require.False(t, AssertionsEnabled())
	require.False(t, IsVerificationEnabled(EnvVerifyValueAssert))

	called := false
	Verify(func() { called = true })
	require.False(t, called)
}

func TestEnableVerifications_Restore(t *testing.T) {
	restoreOff := DisableVerifications()
	defer restoreOff()

	restore := EnableVerifications(EnvVerifyValueAssert)
	require.True(t, AssertionsEnabled())
	require.Equal(t, string(EnvVerifyValueAssert), os.Getenv(EnvVerify))

	restore()
	require.False(t, AssertionsEnabled())
	require.Empty(t, os.Getenv(EnvVerify))
}
