package encoder

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"sync"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
	"go.uber.org/multierr"
)

// sequenceWriter encodes note timelines into sequence files. It is stateless
// between calls; every Write* invocation is a single-pass transform of its
// input.
type sequenceWriter struct {
	logger       contracts.Logger
	ticksPerBeat uint16
	tempoMicros  int64
	workers      int
}

// NewSequenceWriter validates the finalized options and returns the encoder
// behind the public factory.
func NewSequenceWriter(options *contracts.WriterOptions) (contracts.SequenceWriter, error) {
	if options.TicksPerBeat < 1 || options.TicksPerBeat > contracts.MaxTicksPerBeat {
		return nil, fmt.Errorf("%w: %d", contracts.ErrTicksPerBeatRange, options.TicksPerBeat)
	}

	micros := microsecondsPerBeat(options.TempoBPM)
	if !(micros >= 1 && micros <= maxTempoMicros) {
		return nil, fmt.Errorf("%w: %g BPM", contracts.ErrTempoRange, options.TempoBPM)
	}

	workers := options.TrackWorkers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	options.Logger.Info("Sequence writer successfully created",
		options.Logger.Field().Int("ticksPerBeat", int(options.TicksPerBeat)),
		options.Logger.Field().Float64("tempoBPM", options.TempoBPM))

	return &sequenceWriter{
		logger:       options.Logger,
		ticksPerBeat: options.TicksPerBeat,
		tempoMicros:  int64(micros),
		workers:      workers,
	}, nil
}

// buildPayloads encodes every track into its event bytes, fanning the
// independent tracks out across the worker pool. Results are stored by
// declaration index, so completion order never affects output order. The
// tempo meta-event goes on the first track only.
func (s *sequenceWriter) buildPayloads(tracks [][]contracts.NoteEvent) ([][]byte, error) {
	payloads := make([][]byte, len(tracks))
	errs := make([]error, len(tracks))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i := range tracks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			events, err := buildTrack(tracks[i], s.ticksPerBeat)
			if err != nil {
				errs[i] = fmt.Errorf("track %d: %w", i, err)
				return
			}

			var tempo int64
			if i == 0 {
				tempo = s.tempoMicros
			}
			payload, err := trackPayload(events, tempo)
			if err != nil {
				errs[i] = fmt.Errorf("track %d: %w", i, err)
				return
			}
			payloads[i] = payload
		}(i)
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return payloads, nil
}

// WriteSequence encodes tracks into a complete sequence file and returns its
// bytes. The file is assembled only after every track has serialized, so a
// failing track never yields partial output.
func (s *sequenceWriter) WriteSequence(tracks [][]contracts.NoteEvent) ([]byte, error) {
	if len(tracks) > math.MaxUint16 {
		err := fmt.Errorf("%w: %d", contracts.ErrTrackCountRange, len(tracks))
		s.logger.Error("Sequence encoding failed", s.logger.Field().Error("error", err))
		return nil, err
	}

	payloads, err := s.buildPayloads(tracks)
	if err != nil {
		s.logger.Error("Sequence encoding failed", s.logger.Field().Error("error", err))
		return nil, err
	}

	file, err := appendFileHeader(nil, len(payloads), s.ticksPerBeat)
	if err != nil {
		s.logger.Error("Sequence encoding failed", s.logger.Field().Error("error", err))
		return nil, err
	}
	for i, payload := range payloads {
		if file, err = appendTrackChunk(file, payload); err != nil {
			err = fmt.Errorf("track %d: %w", i, err)
			s.logger.Error("Sequence encoding failed", s.logger.Field().Error("error", err))
			return nil, err
		}
	}

	s.logger.Debug("Sequence encoded",
		s.logger.Field().Int("tracks", len(payloads)),
		s.logger.Field().Int("bytes", len(file)))
	return file, nil
}

// WriteTo encodes tracks and streams the complete file to w, returning the
// number of bytes written.
func (s *sequenceWriter) WriteTo(w io.Writer, tracks [][]contracts.NoteEvent) (int64, error) {
	file, err := s.WriteSequence(tracks)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(file)
	if err != nil {
		return int64(n), fmt.Errorf("sequence write: %w", err)
	}
	return int64(n), nil
}

// WriteFile encodes tracks and writes the file at path. On any write failure
// the partial file is removed, so a truncated file is never left looking
// like a complete one.
func (s *sequenceWriter) WriteFile(path string, tracks [][]contracts.NoteEvent) error {
	file, err := s.WriteSequence(tracks)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err = f.Write(file); err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		err = multierr.Append(fmt.Errorf("write %s: %w", path, err), os.Remove(path))
		s.logger.Error("Sequence file write failed", s.logger.Field().Error("error", err))
		return err
	}

	s.logger.Info("Sequence file written",
		s.logger.Field().String("path", path),
		s.logger.Field().Int("tracks", len(tracks)),
		s.logger.Field().Int("bytes", len(file)))
	return nil
}
