package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"

	"prestige_gtm/pkg/api/calculator"
	"prestige_gtm/pkg/api/evaluate"
)

func main() {
	// Load environment variables
	godotenv.Load()

	log.DefaultLogger = log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput:    true,
			EndWithMessage: true,
		},
	}

	addr := os.Getenv("GTM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Calculator pages
	pages := calculator.NewHandler()
	http.HandleFunc("/", pages.HandleIndex)
	http.HandleFunc("/generate", pages.HandleGenerate)

	// JSON API
	http.HandleFunc("/api/evaluate", evaluate.HandleEvaluate)

	log.Info().Str("addr", addr).Msg("Calculator server starting")
	log.Info().Msg("  - GET  /              (scenario form)")
	log.Info().Msg("  - POST /generate      (report page)")
	log.Info().Msg("  - POST /api/evaluate  (JSON API)")

	if err := http.ListenAndServe(addr, logRequests(http.DefaultServeMux)); err != nil {
		log.Error().Err(err).Msg("Server failed to start")
		os.Exit(1)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Msg("Request")
		next.ServeHTTP(w, r)
	})
}
