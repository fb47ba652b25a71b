package main

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"

	"github.com/Roshick/go-autumn-extract/extract"
	"github.com/Roshick/go-autumn-extract/header"
	weblogging "github.com/Roshick/go-autumn-extract/logging"
	"github.com/Roshick/go-autumn-extract/resiliency"
	"github.com/Roshick/go-autumn-extract/static"
	"github.com/Roshick/go-autumn-extract/validation"
	"github.com/Roshick/go-autumn-slog/pkg/logging"
	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/pflag"
)

type Region string

// Unregistered is never added to the router and exists to show a misconfigured extraction.
type Unregistered struct{}

type CreatePerson struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"gte=0"`
}

type ErrorBody struct {
	Error      string                `json:"error"`
	Message    string                `json:"message,omitempty"`
	Violations validation.Violations `json:"violations,omitempty"`
}

func (CreatePerson) JSONError(err error) any {
	return ErrorBody{Error: "malformed_body", Message: err.Error()}
}

func (CreatePerson) ValidateError(violations validation.Violations) any {
	return ErrorBody{Error: "invalid_body", Violations: violations}
}

type Config struct {
	Addr   string
	Strict bool
	Region string
}

func parseConfig(args []string) (Config, error) {
	cfg := Config{}
	flags := pflag.NewFlagSet("example-server", pflag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on")
	flags.BoolVar(&cfg.Strict, "strict", false, "panic on missing static values instead of answering 500")
	flags.StringVar(&cfg.Region, "region", "West", "region served by /greeting")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newRouter(cfg Config) http.Handler {
	region := Region(cfg.Region)
	staticOpts := &static.StaticExtractorOptions{Strict: cfg.Strict}

	router := chi.NewRouter()
	router.Use(weblogging.NewContextLoggerMiddleware(nil))
	router.Use(weblogging.NewRequestLoggerMiddleware(nil))
	router.Use(resiliency.NewRecoverPanicMiddleware(nil))
	router.Use(static.New(base64.StdEncoding))
	router.Use(static.New(&region))

	router.Get("/greeting", extract.Handler2(
		static.NewStaticExtractor[base64.Encoding](staticOpts),
		static.NewStaticExtractor[Region](staticOpts),
		func(w http.ResponseWriter, req *http.Request, encoder static.Static[base64.Encoding], region static.Static[Region]) {
			render.PlainText(w, req, encoder.Ptr().EncodeToString([]byte(region.Get())))
		},
	))

	router.Get("/missing", extract.Handler(
		static.NewStaticExtractor[Unregistered](staticOpts),
		func(w http.ResponseWriter, req *http.Request, _ static.Static[Unregistered]) {
			w.WriteHeader(http.StatusNoContent)
		},
	))

	router.Post("/people", extract.Handler(
		validation.ValidatedJSON[CreatePerson],
		func(w http.ResponseWriter, req *http.Request, person CreatePerson) {
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, person)
		},
	))

	router.With(
		validation.NewRequiredHeaderMiddleware(header.XRequestID, nil),
		validation.NewContextRequestBodyMiddleware[CreatePerson](nil),
	).Post("/people/context", func(w http.ResponseWriter, req *http.Request) {
		person := validation.RequestBodyFromContext[CreatePerson](req.Context())
		render.Status(req, http.StatusCreated)
		render.JSON(w, req, person)
	})

	return router
}

func main() {
	aulogging.Logger = logging.New()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		aulogging.Logger.NoCtx().Error().WithErr(err).Print("failed to parse flags")
		os.Exit(2)
	}

	aulogging.Logger.NoCtx().Info().Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, newRouter(cfg)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		aulogging.Logger.NoCtx().Error().WithErr(err).Print("server stopped")
		os.Exit(1)
	}
}
