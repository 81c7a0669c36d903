package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stmt-engine/cmd/detect"
)

func TestDetectCommand_Metadata(t *testing.T) {
	assert.Equal(t, "detect", detect.Cmd.Use)
	assert.Contains(t, detect.Cmd.Short, "Detect the statement format")
	assert.Contains(t, detect.Cmd.Long, "unknown")
	assert.NotNil(t, detect.Cmd.Run)
}
