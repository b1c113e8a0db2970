package main

import (
	"fmt"

	"github.com/djtlb/BeatsPro-sub001/internal/logger"
	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"github.com/djtlb/BeatsPro-sub001/sdk/smf"
)

func main() {
	log := logger.NewStandardLogger()

	writer, err := smf.NewSequenceWriter(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithTicksPerBeat(480),
		contracts.WithTempo(96),
	)
	if err != nil {
		log.Error("Failed to initialize sequence writer", log.Field().Error("error", err))
		return
	}

	note := func(pitch, velocity uint8, start, duration float64) contracts.NoteEvent {
		n, err := contracts.NewNoteEvent(pitch, velocity, 0, start, duration)
		if err != nil {
			log.Fatal("Invalid note", log.Field().Error("error", err))
		}
		return n
	}

	// A one-bar A minor riff with a sustained chord underneath.
	riff := []contracts.NoteEvent{
		note(57, 100, 0, 0.5),
		note(60, 96, 0.5, 0.5),
		note(64, 102, 1, 1),
		note(62, 90, 2, 0.5),
		note(60, 94, 2.5, 0.5),
		note(57, 100, 3, 1),
	}
	pad := []contracts.NoteEvent{
		note(45, 72, 0, 4),
		note(52, 68, 0, 4),
		note(57, 70, 0, 4),
	}

	data, err := writer.WriteSequence([][]contracts.NoteEvent{riff, pad})
	if err != nil {
		log.Error("Failed to encode sequence", log.Field().Error("error", err))
		return
	}
	fmt.Println("Encoded sequence:", len(data), "bytes")

	if err := writer.WriteFile("riff.mid", [][]contracts.NoteEvent{riff, pad}); err != nil {
		log.Error("Failed to write sequence file", log.Field().Error("error", err))
		return
	}
	fmt.Println("Wrote riff.mid")
}
