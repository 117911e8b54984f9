package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mchmarny/navaug/pkg/menu"
	"github.com/mchmarny/navaug/pkg/metric"
	"github.com/mchmarny/navaug/pkg/server"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		port   int
		render menu.RenderOptions
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the default menu with custom links injected on every render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()

			aug, err := opts.augmenter(reg)
			if err != nil {
				return err
			}

			slog.Info("starting navaug", "commit", commit, "links", aug.Path())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(
				server.WithPort(port),
				server.WithSimpleHealth(),
				server.WithHandler("/metrics", metric.GetHandlerForRegistry(reg)),
				server.WithHandler("/menu.html", menu.HTMLHandler(makeMenu, render, aug.BeforeRender())),
				server.WithHandler("/", menu.Handler(makeMenu, aug.BeforeRender())),
			)

			return srv.Serve(ctx)
		},
	}

	f := cmd.Flags()
	f.IntVar(&port, "port", server.DefaultPort, "Port to run the server on")
	f.StringVar(&render.OutermostClass, "outermost-class", "", "CSS class for top-level entries")
	f.StringVar(&render.ChildrenWrapClass, "children-wrap-class", "", "CSS class for the wrapper around nested lists")
	f.IntVar(&render.Limit, "limit", 0, "Maximum rendered depth, 0 for unlimited")

	return cmd
}

// makeMenu builds the host menu the custom links are appended to.
func makeMenu() *menu.Menu {
	return &menu.Menu{
		Title:   "Top Menu",
		Version: version,
		Items: []*menu.Item{
			{
				Key:  "home",
				Name: "Home",
				URL:  "/",
			},
			{
				Key:  "catalog",
				Name: "Catalog",
				URL:  "/catalog",
				Items: []*menu.Item{
					{Key: "catalog-new", Name: "New Arrivals", URL: "/catalog/new"},
					{Key: "catalog-sale", Name: "Sale", URL: "/catalog/sale"},
				},
			},
		},
	}
}
