package contracts

import "io"

// SequenceWriter defines an interface for encoding note timelines into
// sequence files. A file is assembled only after every track has encoded
// successfully, so no method ever exposes partial output.
type SequenceWriter interface {
	WriteSequence(tracks [][]NoteEvent) ([]byte, error)       // Encodes tracks and returns the complete file bytes.
	WriteTo(w io.Writer, tracks [][]NoteEvent) (int64, error) // Encodes tracks and streams the file to w.
	WriteFile(path string, tracks [][]NoteEvent) error        // Encodes tracks and writes the file at path.
}
