package dataset

import (
	"os"

	"github.com/rs/zerolog"
)

// Only written to when params.Config.Debug is set.
var logger = zerolog.New(os.Stderr).With().Timestamp().Str("pkg", "dataset").Logger()

// SetLogger replaces the debug sink.
func SetLogger(l zerolog.Logger) {
	logger = l
}
