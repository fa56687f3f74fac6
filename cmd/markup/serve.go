package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/markup-go/markup/pkg/dom"
	"github.com/markup-go/markup/pkg/live"
	"github.com/markup-go/markup/pkg/web"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the showcase page with live event dispatch",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			env := live.New(logger)
			dom.SetEnvironment(env)
			page := showcasePage()

			r := web.NewRouter(web.RouterConfig{
				Logger:  logger,
				Metrics: true,
				Tracing: true,
			})
			r.Get("/", web.Adapt(func(*http.Request) any {
				return page
			}))
			r.Handle("/live", live.Handler(env, logger))

			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")

	return cmd
}
