// Package config loads the shop settings of the storefront server: the shop
// name, the locales it serves and the custom font. Values come from an
// optional YAML file and are overridden by environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/pkg/datefmt"
	"journal-storefront/internal/view"
	pkgconfig "journal-storefront/pkg/config"

	"gopkg.in/yaml.v3"
)

// ShopConfig represents the shop section of the configuration file.
//
//	shop:
//	  name: Hydrogen
//	  default_locale: en-US
//	  supported_locales: [en-US, fr-CA, ja-JP]
//	  font_stylesheet_url: https://fonts.googleapis.com/css2?family=Fraunces
//	  image_hosts: [https://cdn.shopify.com]
type ShopConfig struct {
	Name              string   `yaml:"name"`
	DefaultLocale     string   `yaml:"default_locale"`
	SupportedLocales  []string `yaml:"supported_locales"`
	FontStylesheetURL string   `yaml:"font_stylesheet_url"`
	// ImageHosts are added to img-src of the page CSP, next to CSP_IMAGE_SOURCES.
	ImageHosts []string `yaml:"image_hosts"`
}

type fileConfig struct {
	Shop ShopConfig `yaml:"shop"`
}

// DefaultShopConfig returns the settings used when nothing is configured.
func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		Name:              "Hydrogen",
		DefaultLocale:     entity.DefaultLocale.Tag(),
		SupportedLocales:  []string{entity.DefaultLocale.Tag()},
		FontStylesheetURL: view.DefaultFontStylesheetURL,
	}
}

// LoadShopConfig reads the YAML file at path (skipped when path is empty),
// applies environment overrides and validates the result. Missing file
// fields keep their defaults.
//
// Environment variables:
//   - SHOP_NAME
//   - STOREFRONT_DEFAULT_LOCALE
//   - STOREFRONT_LOCALES (comma-separated)
//   - STOREFRONT_FONT_URL
func LoadShopConfig(path string) (*ShopConfig, error) {
	cfg := fileConfig{Shop: DefaultShopConfig()}

	if path != "" {
		// #nosec G304 -- path comes from the operator (flag or STOREFRONT_CONFIG)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	shop := cfg.Shop
	shop.applyEnv()

	if err := shop.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	for _, loc := range shop.UndatedLocales() {
		slog.Warn("no long-date layout for locale, dates render as en-US",
			slog.String("locale", loc.Tag()))
	}
	return &shop, nil
}

func (c *ShopConfig) applyEnv() {
	c.Name = pkgconfig.GetEnvString("SHOP_NAME", c.Name)
	c.DefaultLocale = pkgconfig.GetEnvString("STOREFRONT_DEFAULT_LOCALE", c.DefaultLocale)
	c.SupportedLocales = pkgconfig.GetEnvStringList("STOREFRONT_LOCALES", c.SupportedLocales)
	c.FontStylesheetURL = pkgconfig.GetEnvString("STOREFRONT_FONT_URL", c.FontStylesheetURL)
}

// Validate checks that every locale parses, that the default locale is
// served, and that the font stylesheet is an absolute URL.
func (c *ShopConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &entity.ValidationError{Field: "shop.name", Message: "shop name is required"}
	}

	if _, _, err := c.Locales(); err != nil {
		return err
	}

	if c.FontStylesheetURL != "" {
		if err := entity.ValidateURL(c.FontStylesheetURL); err != nil {
			return fmt.Errorf("shop.font_stylesheet_url: %w", err)
		}
	}

	for _, host := range c.ImageHosts {
		if err := entity.ValidateURL(host); err != nil {
			return fmt.Errorf("shop.image_hosts: %w", err)
		}
	}
	return nil
}

// Locales parses the default and supported locales. The default locale is
// always part of the supported list.
func (c *ShopConfig) Locales() (entity.Locale, []entity.Locale, error) {
	def, err := entity.ParseLocale(c.DefaultLocale)
	if err != nil {
		return entity.Locale{}, nil, fmt.Errorf("shop.default_locale: %w", err)
	}

	supported := make([]entity.Locale, 0, len(c.SupportedLocales)+1)
	hasDefault := false
	for _, s := range c.SupportedLocales {
		loc, err := entity.ParseLocale(s)
		if err != nil {
			return entity.Locale{}, nil, fmt.Errorf("shop.supported_locales: %w", err)
		}
		if loc == def {
			hasDefault = true
		}
		supported = append(supported, loc)
	}
	if !hasDefault {
		supported = append([]entity.Locale{def}, supported...)
	}
	return def, supported, nil
}

// UndatedLocales returns the served locales that datefmt has no layout for.
func (c *ShopConfig) UndatedLocales() []entity.Locale {
	_, supported, err := c.Locales()
	if err != nil {
		return nil
	}
	var out []entity.Locale
	for _, loc := range supported {
		if !datefmt.Supports(loc.Tag()) {
			out = append(out, loc)
		}
	}
	return out
}

// ViewShop returns the settings the HTML views render with.
func (c *ShopConfig) ViewShop() view.Shop {
	return view.Shop{Name: c.Name, FontStylesheetURL: c.FontStylesheetURL}
}
