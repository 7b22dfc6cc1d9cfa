package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale_Codes(t *testing.T) {
	loc := Locale{Language: "en", Country: "us"}

	assert.Equal(t, "EN", loc.LanguageCode())
	assert.Equal(t, "US", loc.CountryCode())
	assert.Equal(t, "en-US", loc.Tag())
	assert.Equal(t, "en-US", loc.String())
}

func TestLocale_TagWithoutCountry(t *testing.T) {
	assert.Equal(t, "fr", Locale{Language: "FR"}.Tag())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Locale
		wantErr error
	}{
		{name: "hyphenated", input: "en-US", want: Locale{Language: "EN", Country: "US"}},
		{name: "underscore", input: "fr_CA", want: Locale{Language: "FR", Country: "CA"}},
		{name: "mixed case", input: "Ja-jp", want: Locale{Language: "JA", Country: "JP"}},
		{name: "language only", input: "de", want: Locale{Language: "DE"}},
		{name: "empty", input: "  ", wantErr: ErrInvalidInput},
		{name: "numeric language", input: "12-US", wantErr: ErrInvalidLocale},
		{name: "long country", input: "en-USA", wantErr: ErrInvalidLocale},
		{name: "too many parts", input: "zh-Hant-TW", wantErr: ErrInvalidLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocale(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://fonts.googleapis.com/css2?family=Fraunces"))

	var vErr *ValidationError
	assert.ErrorAs(t, ValidateURL(""), &vErr)
	assert.ErrorAs(t, ValidateURL("ftp://example.com"), &vErr)
	assert.ErrorAs(t, ValidateURL("https://"), &vErr)
}
