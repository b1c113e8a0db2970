package smf

import (
	"github.com/djtlb/BeatsPro-sub001/internal/encoder"
	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// NewSequenceWriter creates a new sequence writer with the specified options.
// It applies default options and initializes the encoder.
//
// opts ...contracts.Option: A variadic list of option functions to customize the writer configuration.
//
// Returns:
//   - contracts.SequenceWriter: An instance of the sequence writer.
//   - error: An error, if any occurred during the creation of the writer.
func NewSequenceWriter(opts ...contracts.Option) (contracts.SequenceWriter, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	writer, err := encoder.NewSequenceWriter(&options)
	if err != nil {
		return nil, err
	}

	return writer, nil
}
