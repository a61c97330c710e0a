package dwg

import (
	"fmt"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/compress"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/options"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
)

type decoderConfig struct {
	logger     logrus.FieldLogger
	checksum   checksum.Strategy
	retention  format.CompressionType
	decodeText bool
}

// DecoderOption configures Decode, DecodeFile, ReadFileHeader and ReadBody.
type DecoderOption = options.Option[*decoderConfig]

func newDecoderConfig(opts []DecoderOption) (*decoderConfig, error) {
	cfg := &decoderConfig{
		logger:     section.DiscardLogger,
		checksum:   checksum.None(),
		retention:  format.CompressionNone,
		decodeText: true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *decoderConfig) context(hdr *section.FileHeader) section.Context {
	ctx := section.NewContext(hdr)
	ctx.DecodeText = c.decodeText
	ctx.Checksum = c.checksum
	ctx.Logger = c.logger

	return ctx
}

// WithLogger sets the logger receiving debug records for each decode phase.
// Records are emitted at debug level with structured fields, so a
// *logrus.Logger must be at logrus.DebugLevel to show them. The default
// discards everything.
func WithLogger(logger logrus.FieldLogger) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithChecksum sets the strategy that verifies stored CRCs. The default,
// checksum.None(), skips verification.
func WithChecksum(cs checksum.Strategy) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		if cs == nil {
			cs = checksum.None()
		}
		c.checksum = cs
	})
}

// WithRetention selects the codec that compresses retained section bytes.
//
// Returns errs.ErrInvalidCompressionType from the decode call for an unknown
// algorithm.
func WithRetention(algorithm format.CompressionType) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if _, err := compress.GetCodec(algorithm); err != nil {
			return fmt.Errorf("retention: %w", err)
		}
		c.retention = algorithm

		return nil
	})
}

// WithCodePage controls whether 8-bit strings of pre-R2007 files are decoded
// through the code page named in the file header. When disabled, string bytes
// are returned unchanged.
func WithCodePage(enabled bool) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.decodeText = enabled
	})
}
