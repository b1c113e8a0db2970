package smf

import (
	"github.com/djtlb/BeatsPro-sub001/internal/logger"
	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// applyDefaultOptions sets default values for WriterOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify WriterOptions.
//
// Returns:
//   - contracts.WriterOptions: A structure containing the finalized writer options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.WriterOptions, error) {
	options := &contracts.WriterOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger() // Default to the zap-backed logger
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel // Default log level to InfoLevel
	}
	if options.TicksPerBeat == 0 {
		options.TicksPerBeat = contracts.DefaultTicksPerBeat // Default timeline resolution
	}
	if options.TempoBPM == 0 {
		options.TempoBPM = contracts.DefaultTempoBPM // Default tempo
	}

	options.Logger.SetLevel(options.LogLevel) // Set the logger to the specified log level
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	return *options, nil
}
