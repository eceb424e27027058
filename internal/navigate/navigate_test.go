//go:build !js

package navigate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"signin-front/internal/form"
)

func TestNavigatorsWithoutBrowser(t *testing.T) {
	for name, nav := range map[string]form.Navigator{
		"location": Location{},
		"hash":     Hash{},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, nav.Navigate("/home"), ErrUnavailable)
		})
	}
	assert.Equal(t, "", CurrentHash())
}
