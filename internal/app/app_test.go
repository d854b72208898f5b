package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/maze-game/internal/config"
)

func TestChooseUI(t *testing.T) {
	assert.Equal(t, config.UITUI, chooseUI(config.UIAuto, true))
	assert.Equal(t, config.UIConsole, chooseUI(config.UIAuto, false))
	assert.Equal(t, config.UIConsole, chooseUI(config.UIConsole, true))
	assert.Equal(t, config.UITUI, chooseUI(config.UITUI, false))
}
