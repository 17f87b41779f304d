package common

import (
	"os"
	"strings"
	"sync/atomic"
)

// EnvVerify selects the verifications run by Verify. It is read once at
// start-up; use EnableVerifications or DisableVerifications to change it
// afterwards.
const EnvVerify = "BYTEOFFSET_VERIFY"

type VerificationType string

const (
	EnvVerifyValueAll    VerificationType = "all"
	EnvVerifyValueAssert VerificationType = "assert"
)

var (
	// verification holds the lower-cased VerificationType in effect.
	verification atomic.Value
	// assertions caches IsVerificationEnabled(EnvVerifyValueAssert) for Verify.
	assertions atomic.Bool
)

func init() {
	setVerification(os.Getenv(EnvVerify))
}

func setVerification(v string) {
	v = strings.ToLower(v)
	verification.Store(v)
	assertions.Store(v == string(EnvVerifyValueAll) || v == string(EnvVerifyValueAssert))
}

func currentVerification() string {
	return verification.Load().(string)
}

func IsVerificationEnabled(v VerificationType) bool {
	cur := currentVerification()
	return cur == string(EnvVerifyValueAll) || cur == strings.ToLower(string(v))
}

// EnableVerifications turns on the given verification, mirrors it into
// `BYTEOFFSET_VERIFY` for child processes and returns a function that
// restores the previous setting.
func EnableVerifications(v VerificationType) func() {
	return swapVerification(string(v), true)
}

// EnableAllVerifications enables every verification and returns a function
// that restores the previous setting.
func EnableAllVerifications() func() {
	return EnableVerifications(EnvVerifyValueAll)
}

// DisableVerifications turns verification off, unsets `BYTEOFFSET_VERIFY`
// and returns a function that restores the previous setting.
func DisableVerifications() func() {
	return swapVerification("", false)
}

func swapVerification(v string, set bool) func() {
	previous := currentVerification()
	if set {
		_ = os.Setenv(EnvVerify, v)
	} else {
		_ = os.Unsetenv(EnvVerify)
	}
	setVerification(v)
	return func() {
		_ = os.Setenv(EnvVerify, previous)
		setVerification(previous)
	}
}

// Verify runs f if assertions are enabled. With verification off it costs a
// single atomic load.
func Verify(f func()) {
	if assertions.Load() {
		f()
	}
}

// AssertionsEnabled reports whether Verify runs its argument. Hot paths
// check it directly to avoid building the closure.
func AssertionsEnabled() bool {
	return assertions.Load()
}
