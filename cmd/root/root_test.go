package root_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stmt-engine/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "stmt-engine", root.Cmd.Use)
	assert.NotEmpty(t, root.Cmd.Short)
	assert.Contains(t, root.Cmd.Long, "format")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}
