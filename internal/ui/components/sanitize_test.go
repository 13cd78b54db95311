package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabelStripsANSI(t *testing.T) {
	assert.Equal(t, "danger", SanitizeLabel("\x1b[31mdanger\x1b[0m"))
}

func TestSanitizeLabelFlattensWhitespace(t *testing.T) {
	assert.Equal(t, "two lines", SanitizeLabel("two\nlines"))
	assert.Equal(t, "a b", SanitizeLabel("a\tb"))
}

func TestSanitizeLabelDropsControlAndBidi(t *testing.T) {
	assert.Equal(t, "ab", SanitizeLabel("a\x00b"))
	assert.Equal(t, "ab", SanitizeLabel("a‮b"))
}

func TestSanitizeLabelPassesPlainText(t *testing.T) {
	assert.Equal(t, "Mon 12 Aug", SanitizeLabel("Mon 12 Aug"))
	assert.Equal(t, "", SanitizeLabel(""))
}
