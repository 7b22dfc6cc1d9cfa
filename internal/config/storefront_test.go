package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/view"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadShopConfig_Defaults(t *testing.T) {
	cfg, err := LoadShopConfig("")
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultShopConfig(), *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShopConfig_File(t *testing.T) {
	path := writeConfig(t, `
shop:
  name: Snowdevil
  default_locale: fr-CA
  supported_locales: [en-US, fr-CA]
  image_hosts: [https://images.example.com]
`)

	cfg, err := LoadShopConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Snowdevil", cfg.Name)
	assert.Equal(t, "fr-CA", cfg.DefaultLocale)
	assert.Equal(t, []string{"en-US", "fr-CA"}, cfg.SupportedLocales)
	assert.Equal(t, []string{"https://images.example.com"}, cfg.ImageHosts)
	// Unset in the file, so the default stays.
	assert.Equal(t, view.DefaultFontStylesheetURL, cfg.FontStylesheetURL)
}

func TestLoadShopConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
shop:
  name: Snowdevil
  default_locale: fr-CA
  supported_locales: [fr-CA]
`)
	t.Setenv("SHOP_NAME", "Hydrogen Demo")
	t.Setenv("STOREFRONT_DEFAULT_LOCALE", "ja-JP")
	t.Setenv("STOREFRONT_LOCALES", "ja-JP, en-US")

	cfg, err := LoadShopConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Hydrogen Demo", cfg.Name)
	assert.Equal(t, "ja-JP", cfg.DefaultLocale)
	assert.Equal(t, []string{"ja-JP", "en-US"}, cfg.SupportedLocales)
}

func TestLoadShopConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "shop: [unclosed"},
		{name: "empty name", content: "shop:\n  name: \"  \"\n"},
		{name: "bad default locale", content: "shop:\n  default_locale: english\n"},
		{name: "bad supported locale", content: "shop:\n  supported_locales: [en-US, x1]\n"},
		{name: "relative font url", content: "shop:\n  font_stylesheet_url: /fonts.css\n"},
		{name: "bad image host", content: "shop:\n  image_hosts: [ftp://cdn.example.com]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadShopConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadShopConfig_MissingFile(t *testing.T) {
	_, err := LoadShopConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestShopConfig_ValidationErrorIsInvalidInput(t *testing.T) {
	cfg := DefaultShopConfig()
	cfg.Name = ""
	assert.ErrorIs(t, cfg.Validate(), entity.ErrInvalidInput)
}

func TestShopConfig_Locales(t *testing.T) {
	cfg := ShopConfig{
		Name:             "Hydrogen",
		DefaultLocale:    "fr-CA",
		SupportedLocales: []string{"en-US", "ja-JP"},
	}

	def, supported, err := cfg.Locales()
	require.NoError(t, err)

	assert.Equal(t, entity.Locale{Language: "FR", Country: "CA"}, def)
	want := []entity.Locale{
		{Language: "FR", Country: "CA"},
		{Language: "EN", Country: "US"},
		{Language: "JA", Country: "JP"},
	}
	if diff := cmp.Diff(want, supported); diff != "" {
		t.Errorf("supported mismatch (-want +got):\n%s", diff)
	}
}

func TestShopConfig_ViewShop(t *testing.T) {
	cfg := DefaultShopConfig()
	assert.Equal(t, view.Shop{Name: "Hydrogen", FontStylesheetURL: view.DefaultFontStylesheetURL}, cfg.ViewShop())
}

func TestShopConfig_UndatedLocales(t *testing.T) {
	cfg := ShopConfig{
		Name:             "Hydrogen",
		DefaultLocale:    "en-CA",
		SupportedLocales: []string{"fr-CA", "sw-KE", "sv-SE"},
	}

	want := []entity.Locale{{Language: "SW", Country: "KE"}}
	if diff := cmp.Diff(want, cfg.UndatedLocales()); diff != "" {
		t.Errorf("undated locales mismatch (-want +got):\n%s", diff)
	}

	def := DefaultShopConfig()
	assert.Empty(t, def.UndatedLocales())
}
