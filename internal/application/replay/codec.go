package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrEmptyRecording is returned when saving a recording with no frames
	ErrEmptyRecording = errors.New("no frames to save")
	// ErrUnknownFormat is returned for a file extension with no codec
	ErrUnknownFormat = errors.New("unknown replay format")
)

// Format selects the on-disk encoding of a replay
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// FormatFor picks the codec from the file extension:
// .json for JSON, .msgpack or .mpk for MessagePack
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return FormatJSON, fmt.Errorf("%q: %w", filename, ErrUnknownFormat)
	}
}

// Encode writes data to w in the given format
func Encode(w io.Writer, data ReplayData, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(&data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

// Decode reads replay data from r in the given format
func Decode(r io.Reader, format Format) (*ReplayData, error) {
	var data ReplayData
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return &data, nil
}

// Save writes replay data to a file, encoded by its extension
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmptyRecording
	}
	format, err := FormatFor(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Encode(file, data, format)
}

// LoadReplay loads replay data from a file, decoded by its extension
func LoadReplay(filename string) (*ReplayData, error) {
	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, format)
}
