package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
		assert.NotEmpty(t, tool.Summary())
	}
	for alias, want := range map[string]Tool{"RECT": Rectangle, "poly": Polygon, " pen ": Pencil, "tri": Triangle} {
		got, err := ParseTool(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got)
	}
	_, err := ParseTool("spray")
	assert.Error(t, err)
}

func TestToolProperties(t *testing.T) {
	assert.True(t, Pencil.Freehand())
	assert.True(t, Eraser.Freehand())
	assert.False(t, Curve.Freehand())
	assert.False(t, Tool(-1).Valid())
	assert.Equal(t, "Tool(42)", Tool(42).String())
	for _, tool := range Tools() {
		_, ok := behaviors[tool]
		assert.True(t, ok, "no behavior for %s", tool)
	}
}
