package translit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/ruphon/internal/ipa"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"nʲæ", "ня"},
		{"podjezd", "подъезд"},
		{"huj", "хуй"},
		{"mʲæːu", "мяау"},
		{"mʲːæːu", "мьмяау"},
		{"nʲæ nʲæn", "ня нян"},
		{"axujetʲ", "ахуеть"},
		{"jebatʲ", "ебать"},
		{"ʃʲuʃa", "щуша"},
		{"ʨakra", "чакра"},
		{"ɕːi", "щщы"},
		{"ʦvʲet", "цвет"},
		{"jolka", "ёлка"},
		{"mʲæsa", "мяса"},
		{"sʲemʲ", "семь"},
		{"ʐɨzʲnʲ", "жызьнь"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Transliterate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransliterate_Deterministic(t *testing.T) {
	for _, input := range []string{"mʲːæːu", "podjezd", "nʲæ nʲæn"} {
		first, err := Transliterate(input)
		require.NoError(t, err)
		second, err := Transliterate(input)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestTransliterate_LengthDoubling(t *testing.T) {
	tests := []struct {
		short string
		long  string
	}{
		{"mʲ", "mʲː"},
		{"a", "aː"},
		{"n", "nː"},
		{"j", "jː"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			single, err := Transliterate(tt.short)
			require.NoError(t, err)
			double, err := Transliterate(tt.short + tt.short)
			require.NoError(t, err)
			got, err := Transliterate(tt.long)
			require.NoError(t, err)
			assert.Equal(t, double, got)
			assert.Equal(t, single+single, got)
		})
	}

	// each geminated unit gets its own soft sign and iotation decision
	got, err := Transliterate("lʲːa")
	require.NoError(t, err)
	assert.Equal(t, "льля", got)
}

func TestTransliterate_PalatalizedVowel(t *testing.T) {
	for _, sym := range ipa.Symbols() {
		if !sym.Vowel {
			continue
		}
		input := string(sym.Rune) + "ʲ"
		t.Run(input, func(t *testing.T) {
			got, err := Transliterate(input)
			assert.Empty(t, got)

			var perr *ipa.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, ipa.PalatalizedVowel, perr.Kind)
			assert.Equal(t, sym.Rune, perr.Symbol)
		})
	}
}

func TestTransliterate_UnsupportedSymbol(t *testing.T) {
	for _, input := range []string{"w", "nʲæ!", "привет", "a-b", "1"} {
		t.Run(input, func(t *testing.T) {
			got, err := Transliterate(input)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ipa.ErrUnsupportedSymbol)
		})
	}
}

func TestExplain(t *testing.T) {
	steps, err := Explain("mʲːæ")
	require.NoError(t, err)
	require.Len(t, steps, 3)

	var spelled strings.Builder
	for _, s := range steps {
		spelled.WriteString(s.Grapheme)
	}
	assert.Equal(t, "мьмя", spelled.String())

	assert.Equal(t, "мь", steps[0].Grapheme)
	assert.False(t, steps[0].Context.NextIsVowel)
	assert.True(t, steps[1].Context.NextIsVowel)
	assert.True(t, steps[2].Context.PrevPalatalized)
	assert.Contains(t, steps[2].String(), "prev-soft")
}

func TestExplain_Error(t *testing.T) {
	steps, err := Explain("aʲ")
	assert.Nil(t, steps)
	assert.ErrorIs(t, err, ipa.ErrPalatalizedVowel)
}
