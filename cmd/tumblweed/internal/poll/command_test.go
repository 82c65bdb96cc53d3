package poll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPollCommand(t *testing.T) {
	cmd := NewPollCommand()

	require.NotNil(t, cmd)

	assert.Equal(t, "poll <post-id>", cmd.Use)
	assert.Nil(t, cmd.Run)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("blog"))
	assert.NotNil(t, cmd.Flags().Lookup("poll-id"))

	require.Error(t, cmd.Args(cmd, []string{}))
	require.NoError(t, cmd.Args(cmd, []string{"712345678901234567"}))
}
