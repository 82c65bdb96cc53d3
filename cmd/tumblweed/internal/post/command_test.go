package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostCommand(t *testing.T) {
	cmd := NewPostCommand()

	require.NotNil(t, cmd)

	assert.Equal(t, "post <document.yaml>", cmd.Use)
	assert.Equal(t, "Create a post from a YAML document", cmd.Short)

	assert.Nil(t, cmd.Run)
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.HasExample())

	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("tag"))
	assert.NotNil(t, cmd.Flags().Lookup("queue"))
	assert.NotNil(t, cmd.Flags().Lookup("draft"))
}

func TestNewPostCommand_RequiresDocumentArg(t *testing.T) {
	cmd := NewPostCommand()

	err := cmd.Args(cmd, []string{})
	require.Error(t, err)

	err = cmd.Args(cmd, []string{"doc.yaml"})
	require.NoError(t, err)

	err = cmd.Args(cmd, []string{"doc.yaml", "extra"})
	require.Error(t, err)
}

func TestNewPostCommand_QueueDraftExclusive(t *testing.T) {
	cmd := NewPostCommand()
	cmd.SetArgs([]string{"doc.yaml", "--queue", "--draft"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
