package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scratchgfx/raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	webServer := server.NewServer(*port, log.Logger)

	log.Info().Int("port", *port).Msg("raytracer render server")
	if err := webServer.Start(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
