package api

import (
	"errors"
	"testing"

	"github.com/VxidDev/eduDuck/quiz"
	"github.com/stretchr/testify/require"
)

func TestNewService_InvalidMaxWarnings(t *testing.T) {
	config := testConfig
	config.MaxWarnings = 0

	service, err := NewService(config, nil, nil, nil)
	require.Error(t, err)
	require.Nil(t, service)

	var ce *quiz.ConfigError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, quiz.IssueInvalidWarningsLimit, ce.Issue)
}
