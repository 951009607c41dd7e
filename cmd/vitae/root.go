package main

import (
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vitae-dev/vitae/core"
	"github.com/vitae-dev/vitae/i18n"
	"github.com/vitae-dev/vitae/log"
	"github.com/vitae-dev/vitae/renderer"
	"github.com/vitae-dev/vitae/server"
)

var rootCmd = &cobra.Command{
	Use:               "vitae",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Vitae is a localized résumé site generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// serve runs the preview server until interrupted. It backs both the bare
// invocation and the explicit serve command.
func serve() error {
	defer func() {
		_ = log.L().Sync()
	}()

	c, co, r, err := setup()
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	srv, err := server.NewServer(c, co, r)
	if err != nil {
		return err
	}

	logger := log.S()

	go func() {
		logger.Info("starting server")
		err := srv.Start()
		if err != nil {
			logger.Errorf("failed to start server: %s", err)
		}
		quit <- os.Interrupt
	}()

	signal.Notify(quit, os.Interrupt)
	<-quit

	logger.Info("stopping server")
	return srv.Stop()
}

// setup parses the configuration and wires the content core, the
// translations bundle and the renderer together.
func setup() (*core.Config, *core.Core, *renderer.Renderer, error) {
	c, err := core.ParseConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	co, err := core.NewCore(c)
	if err != nil {
		return nil, nil, nil, err
	}

	codes := lo.Map(c.Site.Locales, func(l *core.Locale, _ int) string {
		return l.Code
	})

	translator, err := i18n.NewTranslator(co.SourceFS(), c.Site.Primary().Code, codes)
	if err != nil {
		return nil, nil, nil, err
	}
	co.SetTranslator(translator)

	r, err := renderer.NewRenderer(c, co)
	if err != nil {
		return nil, nil, nil, err
	}

	return c, co, r, nil
}
