package invite_test

import (
	"strings"
	"testing"

	"family-finance-backend/internal/invite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndCharset(t *testing.T) {
	g := invite.NewGenerator()

	for i := 0; i < 100; i++ {
		code, err := g.Generate()
		require.NoError(t, err)

		assert.Len(t, code, invite.CodeLength)
		for _, r := range code {
			isUpper := r >= 'A' && r <= 'Z'
			isDigit := r >= '0' && r <= '9'
			assert.True(t, isUpper || isDigit, "unexpected character %q in code %s", r, code)
		}
		assert.Equal(t, strings.ToUpper(code), code)
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	g := invite.NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		seen[code] = true
	}

	// 50 draws from a 36^6 space colliding down to one value would mean the
	// source is not random at all
	assert.Greater(t, len(seen), 1)
}
