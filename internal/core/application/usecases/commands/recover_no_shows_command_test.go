package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewRecoverNoShowsCommand(t *testing.T) {
	cmd := commands.NewRecoverNoShowsCommand()
	require.NoError(t, cmd.Validate())
}

func TestRecoverNoShowsCommand_NotConstructed(t *testing.T) {
	cmd := commands.RecoverNoShowsCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecoverNoShowsCommandIsNotConstructed)
}
