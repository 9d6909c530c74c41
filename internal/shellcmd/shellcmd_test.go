package shellcmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSingleCommandCaptured(t *testing.T) {
	p := NewBuilder().Add("echo", "-n", "hello").Build()
	out, err := p.Run(true)
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestRunPipelineCaptured(t *testing.T) {
	p := NewBuilder().
		Add("printf", "hello\n").
		Add("tr", "a-z", "A-Z").
		Build()
	out, err := p.Run(true)
	require.NoError(t, err)
	require.Equal(t, "HELLO", out)
}

func TestRunUncapturedReturnsEmptyString(t *testing.T) {
	p := NewBuilder().Add("true").Build()
	out, err := p.Run(false)
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestRunPropagatesSpawnError(t *testing.T) {
	p := NewBuilder().Add("this-binary-does-not-exist-xyz").Build()
	_, err := p.Run(true)
	require.Error(t, err)
}

func TestRunEmptyPipelineIsNoop(t *testing.T) {
	p := NewBuilder().Build()
	out, err := p.Run(true)
	require.NoError(t, err)
	require.Equal(t, "", out)
}
