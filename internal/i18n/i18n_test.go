package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"signin-front/internal/form"
)

func TestEnglishMatchesFormDefaults(t *testing.T) {
	c := New("en")
	assert.Equal(t, form.DefaultMessages, c.Messages())
	assert.Equal(t, "Sign In", c.T("form.title"))
}

func TestJapanese(t *testing.T) {
	c := New("ja")
	assert.Equal(t, "パスワード", c.T("form.password_placeholder"))
	assert.NotEqual(t, form.DefaultMessages.Blocked, c.Messages().Blocked)
}

func TestFallbacks(t *testing.T) {
	c := New("de")
	assert.Equal(t, "Sign in", c.T("form.submit"))
	assert.Equal(t, "no.such.id", c.T("no.such.id"))
}

func TestLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "ja"}, New("en").Languages())
}
