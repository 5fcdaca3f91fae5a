package domain_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	detail := zerr.With(zerr.Wrap(errors.New("exit status 3"), "command failed"), domain.ExitCodeKey, 3)
	err := zerr.Wrap(errors.Join(detail, domain.ErrExecutionFailed), "proguard execution failed")

	require.ErrorIs(t, err, domain.ErrExecutionFailed)
	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestExitCode_OtherErrors(t *testing.T) {
	_, ok := domain.ExitCode(nil)
	assert.False(t, ok)

	_, ok = domain.ExitCode(os.ErrNotExist)
	assert.False(t, ok)

	// Classified but without metadata.
	_, ok = domain.ExitCode(domain.ErrExecutionFailed)
	assert.False(t, ok)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "INFO", domain.LogLevelInfo.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}

func TestInvocation_Runnable(t *testing.T) {
	var nilInv *domain.Invocation
	assert.False(t, nilInv.Runnable())
	assert.True(t, (&domain.Invocation{}).Runnable())
	assert.False(t, (&domain.Invocation{Skip: domain.SkipDisabled}).Runnable())
	assert.False(t, (&domain.Invocation{Skip: domain.SkipNoInput}).Runnable())
	assert.Equal(t, "disabled", domain.SkipDisabled.String())
	assert.Equal(t, "no input configured", domain.SkipNoInput.String())
}
