package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dchest/uniuri"
	"github.com/ghettp/ghettp"
	"github.com/ghettp/ghettp/http"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const tokenLength = 32

const indexPage = `<!DOCTYPE html>
<html>
<head><title>ghettp</title></head>
<body>
	<p>Server is running.</p>
	<h2>Available endpoints:</h2>
	<ul>
		<li><strong>GET /</strong> - this page</li>
		<li><strong>GET /api/status</strong> - server status (JSON)</li>
		<li><strong>GET /api/time</strong> - current time (JSON)</li>
		<li><strong>GET /api/token</strong> - a fresh random token (JSON)</li>
		<li><strong>POST /api/echo</strong> - echo request data (JSON)</li>
		<li><strong>GET /hello</strong> - a greeting</li>
	</ul>
</body>
</html>`

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var port uint16

	cmd := &cobra.Command{
		Use:           "ghettp",
		Short:         "Demo application for the ghettp server engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(port)
		},
	}
	cmd.Flags().Uint16VarP(&port, "port", "p", 8080, "port to listen on")

	return cmd
}

func serve(port uint16) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	app, err := ghettp.New(fmt.Sprintf(":%d", port))
	if err != nil {
		log.Error().Err(err).Msg("can't start")
		return err
	}

	app.
		Get("/", func(http.Request) http.Response {
			return http.HTML(indexPage)
		}).
		Get("/api/status", func(http.Request) http.Response {
			return http.JSONOf(map[string]string{
				"status": "running",
				"server": "ghettp",
			})
		}).
		Get("/api/time", func(http.Request) http.Response {
			return http.JSONOf(map[string]int64{
				"timestamp": time.Now().Unix(),
			})
		}).
		Get("/api/token", func(http.Request) http.Response {
			return http.JSONOf(map[string]string{
				"token": uniuri.NewLen(tokenLength),
			})
		}).
		Post("/api/echo", func(request http.Request) http.Response {
			return http.JSON(fmt.Sprintf(
				`{"method": %q, "path": %q, "body": %q}`,
				request.Method, request.Path, request.Body,
			))
		}).
		// the route table matches the full target verbatim, so only a bare
		// /hello ever reaches this handler; /hello?name=x is a 404
		Get("/hello", func(http.Request) http.Response {
			return http.HTML("<h1>Hello, World!</h1><p><a href=\"/\">Back home</a></p>")
		}).
		NotifyOnStart(func() {
			log.Info().Uint16("port", port).Msg("server is running")
		}).
		NotifyOnStop(func() {
			log.Info().Msg("server stopped")
		})

	app.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	return app.Stop()
}
