// Command demo runs two counting routines on one pool and logs the
// interleaving their yields produce.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/greenlab/routine"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	r := routine.New()
	r.Init()

	counter := func(id, limit int) func() {
		return func() {
			log.Info().Int("routine", id).Msg("starting")
			for i := 0; i < limit; i++ {
				log.Info().Int("routine", id).Int("counter", i).Msg("tick")
				routine.Yield()
			}
			log.Info().Int("routine", id).Msg("finished")
		}
	}

	if err := r.Go(counter(1, 10)); err != nil {
		log.Fatal().Err(err).Msg("spawn")
	}
	if err := r.Go(counter(2, 15)); err != nil {
		log.Fatal().Err(err).Msg("spawn")
	}

	r.Run()
	log.Info().Msg("all routines completed")
}
