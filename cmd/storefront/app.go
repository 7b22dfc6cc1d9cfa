package main

import (
	"fmt"
	"log/slog"

	"journal-storefront/internal/config"
	"journal-storefront/internal/handler/http/journal"
	"journal-storefront/internal/handler/http/locale"
	"journal-storefront/internal/infra/storefront"
	journalUC "journal-storefront/internal/usecase/journal"
)

// app wires the journal page renderer to the Storefront API.
type app struct {
	shop     *config.ShopConfig
	client   *storefront.Client
	locales  *locale.Resolver
	renderer journal.Renderer
}

// newApp loads the shop and API configuration and builds the components
// both subcommands share.
func newApp(logger *slog.Logger, configPath string, opts ...storefront.Option) (*app, error) {
	shop, err := config.LoadShopConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load shop config: %w", err)
	}

	sfCfg, err := storefront.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}

	return assemble(logger, shop, sfCfg, opts...)
}

func assemble(logger *slog.Logger, shop *config.ShopConfig, sfCfg storefront.Config, opts ...storefront.Option) (*app, error) {
	def, supported, err := shop.Locales()
	if err != nil {
		return nil, err
	}

	client := storefront.NewClient(sfCfg, append([]storefront.Option{storefront.WithLogger(logger)}, opts...)...)
	svc := &journalUC.Service{Repo: client}

	return &app{
		shop:     shop,
		client:   client,
		locales:  locale.NewResolver(def, supported),
		renderer: journal.Renderer{Svc: svc, Shop: shop.ViewShop()},
	}, nil
}
