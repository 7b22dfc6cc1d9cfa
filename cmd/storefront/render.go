package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"journal-storefront/internal/handler/http/cachecontrol"
	"journal-storefront/internal/handler/http/journal"
	"journal-storefront/internal/handler/http/respond"
	"journal-storefront/internal/view"

	"github.com/spf13/cobra"
)

// ErrUnsupportedLocale is returned when --locale matches no configured locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

func newRenderCmd(root *rootOptions) *cobra.Command {
	var handle, localeTag string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one journal article page to stdout",
		Long: `Render fetches one journal article and writes the page HTML to stdout.
The declared Cache-Control policy and the status code are written to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root.logger, root.configPath)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), a, handle, localeTag, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "article handle")
	cmd.Flags().StringVar(&localeTag, "locale", "", "locale tag such as fr-CA (default: the shop default)")
	_ = cmd.MarkFlagRequired("handle")
	return cmd
}

// runRender renders handle the way GET /journal/{handle} would.
func runRender(ctx context.Context, a *app, handle, localeTag string, stdout, stderr io.Writer) error {
	loc := a.locales.Default()
	if localeTag != "" {
		matched, ok := a.locales.Match(localeTag)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedLocale, localeTag)
		}
		loc = matched
	}

	rec := &cachecontrol.Recorder{}
	page, err := a.renderer.Render(ctx, journal.RouteParams{journal.HandleParam: handle}, loc, rec)
	if p, ok := rec.Last(); ok {
		fmt.Fprintf(stderr, "Cache-Control: %s\n", p.Header())
	}
	if err != nil {
		slog.Default().Error("render failed",
			slog.String("handle", handle),
			slog.String("locale", loc.Tag()),
			slog.String("error", respond.SanitizeError(err)))
		return err
	}

	fmt.Fprintf(stderr, "Status: %d\n", page.Status)
	if err := view.Render(stdout, page.Body); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
