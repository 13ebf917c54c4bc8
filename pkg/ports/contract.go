package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTranslatorContract runs a suite of tests to verify that a Translator
// implementation adheres to the interface contract. The implementation must
// accept toLang; the texts themselves are arbitrary.
func RunTranslatorContract(t *testing.T, tr Translator, toLang string) {
	ctx := context.Background()

	t.Run("Length and order preserved", func(t *testing.T) {
		texts := []string{"alpha", "beta", "gamma"}
		out, err := tr.TranslateBatch(ctx, texts, toLang)
		require.NoError(t, err, "TranslateBatch should not return error")
		require.Len(t, out, len(texts), "output length must match input length")
	})

	t.Run("Empty batch", func(t *testing.T) {
		out, err := tr.TranslateBatch(ctx, nil, toLang)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Deterministic", func(t *testing.T) {
		texts := []string{"repeatable"}
		first, err := tr.TranslateBatch(ctx, texts, toLang)
		require.NoError(t, err)
		second, err := tr.TranslateBatch(ctx, texts, toLang)
		require.NoError(t, err)
		assert.Equal(t, first, second, "same input should yield same output")
	})
}
