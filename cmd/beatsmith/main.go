package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/djtlb/BeatsPro-sub001/internal/arrange"
	"github.com/djtlb/BeatsPro-sub001/internal/groove"
	"github.com/djtlb/BeatsPro-sub001/internal/logger"
	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/djtlb/BeatsPro-sub001/sdk/smf"
)

func main() {
	var (
		style       = flag.String("style", "house", fmt.Sprintf("built-in style: %s", strings.Join(groove.Styles(), ", ")))
		bars        = flag.Int("bars", 8, "number of 4/4 bars to generate")
		seed        = flag.Int64("seed", 1, "seed for velocity and hat variation")
		bpm         = flag.Float64("bpm", 0, "tempo override in BPM (0 keeps the style or arrangement tempo)")
		resolution  = flag.Uint("resolution", uint(contracts.DefaultTicksPerBeat), "ticks per beat written to the file header")
		arrangement = flag.String("arrange", "", "YAML arrangement file; overrides style generation")
		out         = flag.String("out", "beat.mid", "output file path")
		logFile     = flag.String("logfile", "", "write logs to this file instead of the console")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log := logger.NewZapLogger()
	level := contracts.InfoLevel
	if *debug {
		level = contracts.DebugLevel
	}

	// Catch header-field overflow here; a uint16 cast below would wrap silently.
	if *resolution > contracts.MaxTicksPerBeat {
		log.Fatal("Resolution out of range", log.Field().Uint64("resolution", uint64(*resolution)))
	}

	var (
		tracks [][]contracts.NoteEvent
		tempo  = *bpm
		ticks  = uint16(*resolution)
		err    error
	)

	if *arrangement != "" {
		var arr *arrange.Arrangement
		if arr, err = arrange.Load(*arrangement); err != nil {
			log.Fatal("Could not load arrangement", log.Field().Error("error", err))
		}
		if tracks, err = arr.NoteTracks(); err != nil {
			log.Fatal("Could not resolve arrangement notes", log.Field().Error("error", err))
		}
		if tempo == 0 {
			tempo = arr.BPM
		}
		if arr.TicksPerBeat != 0 {
			ticks = arr.TicksPerBeat
		}
		log.Info("Arrangement loaded",
			log.Field().String("title", arr.Title),
			log.Field().Int("tracks", len(tracks)))
	} else {
		var gen *groove.Generator
		if gen, err = groove.NewGenerator(groove.Style(*style), *seed); err != nil {
			log.Fatal("Could not create generator", log.Field().Error("error", err))
		}
		if tracks, err = gen.Tracks(*bars); err != nil {
			log.Fatal("Could not generate tracks", log.Field().Error("error", err))
		}
		if tempo == 0 {
			tempo = gen.BPM()
		}
		log.Info("Groove generated",
			log.Field().String("style", *style),
			log.Field().Int("bars", *bars),
			log.Field().Int64("seed", *seed))
	}

	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
		contracts.WithTicksPerBeat(ticks),
		contracts.WithTempo(tempo),
	}
	if *logFile != "" {
		opts = append(opts, contracts.WithLogFile(*logFile))
	}

	writer, err := smf.NewSequenceWriter(opts...)
	if err != nil {
		log.Fatal("Could not create sequence writer", log.Field().Error("error", err))
	}

	if err := writer.WriteFile(*out, tracks); err != nil {
		log.Fatal("Could not write sequence file", log.Field().Error("error", err))
	}
}
