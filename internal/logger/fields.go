package logger

import (
	"time"

	"github.com/djtlb/BeatsPro-sub001/sdk/contracts"
)

// field is the Field implementation shared by the package's loggers.
type field struct {
	key   string
	value interface{}
}

func (f *field) Bool(key string, val bool) contracts.Field {
	return &field{key, val}
}

func (f *field) Int(key string, val int) contracts.Field {
	return &field{key, val}
}

func (f *field) Float64(key string, val float64) contracts.Field {
	return &field{key, val}
}

func (f *field) String(key string, val string) contracts.Field {
	return &field{key, val}
}

func (f *field) Time(key string, val time.Time) contracts.Field {
	return &field{key, val}
}

func (f *field) Int64(key string, val int64) contracts.Field {
	return &field{key, val}
}

func (f *field) Error(key string, val error) contracts.Field {
	return &field{key, val}
}

func (f *field) Uint64(key string, val uint64) contracts.Field {
	return &field{key, val}
}

func (f *field) Uint8(key string, val uint8) contracts.Field {
	return &field{key, val}
}
