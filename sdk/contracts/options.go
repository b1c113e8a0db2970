package contracts

// Defaults applied by the writer factory when an option is not provided.
const (
	DefaultTicksPerBeat uint16  = 480
	DefaultTempoBPM     float64 = 120
)

// WriterOptions defines the configuration options for the sequence writer.
type WriterOptions struct {
	Logger       Logger   // Logger for progress and failure reporting.
	LogLevel     LogLevel // Level of logging to use.
	LogFilePath  string   // File path for logging if file logging is enabled.
	TicksPerBeat uint16   // Timeline resolution written to the file header.
	TempoBPM     float64  // Tempo written to the first track's tempo meta-event.
	TrackWorkers int      // Tracks encoded concurrently; 0 picks one worker per CPU.
}

// Option is a function that modifies WriterOptions.
type Option func(*WriterOptions)

// WithLogger sets the logger for the sequence writer.
func WithLogger(l Logger) Option {
	return func(opts *WriterOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the sequence writer.
func WithLogLevel(level LogLevel) Option {
	return func(opts *WriterOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile directs the writer's logs to the file at path.
func WithLogFile(path string) Option {
	return func(opts *WriterOptions) {
		opts.LogFilePath = path
	}
}

// WithTicksPerBeat sets the timeline resolution in ticks per beat.
func WithTicksPerBeat(ticksPerBeat uint16) Option {
	return func(opts *WriterOptions) {
		opts.TicksPerBeat = ticksPerBeat
	}
}

// WithTempo sets the tempo in beats per minute.
func WithTempo(bpm float64) Option {
	return func(opts *WriterOptions) {
		opts.TempoBPM = bpm
	}
}

// WithTrackWorkers caps how many tracks encode in parallel.
func WithTrackWorkers(n int) Option {
	return func(opts *WriterOptions) {
		opts.TrackWorkers = n
	}
}
