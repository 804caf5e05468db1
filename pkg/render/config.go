package render

import (
	"github.com/velum-dev/velum/internal/errors"
)

// Mode selects the whitespace framing of the output. Both modes serialize
// identical tags, attributes, and classes.
type Mode uint8

const (
	// ModeCompact emits no extraneous whitespace.
	ModeCompact Mode = iota

	// ModePretty inserts newlines and depth-proportional indentation.
	// Should only be used in development as it increases output size.
	ModePretty
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModePretty:
		return "pretty"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as found in velum.json.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "compact":
		return ModeCompact, nil
	case "pretty":
		return ModePretty, nil
	default:
		return 0, errors.New("E101").WithDetailf("unknown render mode %q (want \"compact\" or \"pretty\")", s)
	}
}

// DefaultChunkSize is the chunk threshold used when Config.ChunkSize is 0.
const DefaultChunkSize = 4096

// Config configures a render call.
type Config struct {
	// Mode selects compact or pretty output.
	Mode Mode

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// ChunkSize is the byte threshold at which the chunked sink yields.
	// Defaults to DefaultChunkSize. Chunk boundaries are always chosen at
	// safe points between nodes, so chunks may overshoot this size.
	ChunkSize int
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	return c
}

// validate fails fast on values outside the recognized enumeration rather
// than silently defaulting.
func (c Config) validate() error {
	if c.Mode > ModePretty {
		return errors.New("E101").WithDetailf("unknown render mode %d", c.Mode)
	}
	if c.ChunkSize < 0 {
		return errors.New("E101").WithDetailf("negative chunk size %d", c.ChunkSize)
	}
	return nil
}
