package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Left.Keys(), "h")
	assert.Contains(t, km.Right.Keys(), "l")
	assert.Contains(t, km.Copy.Keys(), "enter")
	assert.Contains(t, km.Copy.Keys(), "c")
	assert.Contains(t, km.Edit.Keys(), "e")
	assert.Equal(t, []string{"enter"}, km.Generate.Keys())
	assert.Equal(t, []string{"esc"}, km.Browse.Keys())
}
