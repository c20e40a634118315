package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "The wraiths caught you.", T("OUTCOME_CAUGHT"))
	assert.Equal(t, "A new maze takes shape (seed 7)", T("NEW_MAZE", 7))
}

func TestT_UnknownIDReturnedAsIs(t *testing.T) {
	assert.Equal(t, "NO_SUCH_MESSAGE", T("NO_SUCH_MESSAGE"))
}

func TestInit_MissingCatalogueIsHarmless(t *testing.T) {
	Init(t.TempDir(), "xx_XX")
	assert.Equal(t, "Energy", T("ENERGY"))
}
