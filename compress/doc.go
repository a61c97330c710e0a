// Package compress provides the codecs used by the drawing decoder.
//
// Two families live here:
//
//   - The section page codec. R2004 and later files store most section pages
//     in an LZ77 variant; LZ77Decompressor decodes it and checks the output
//     against the page's declared size. PageDecompressor maps the compression
//     type recorded in a page header to the right decompressor.
//   - General-purpose codecs (none, zstd, s2, lz4) used to keep decoded
//     sections in memory after a decode pass. CreateCodec and GetCodec select
//     one by format.CompressionType.
//
// # Page codec errors
//
// Decoding a page never panics on malformed input. Producing more bytes than
// declared returns errs.ErrDecompressionOverrun, fewer returns
// errs.ErrDecompressionShortfall, an unknown opcode or a back-reference before
// the start of the output returns errs.ErrMalformedField, and running off the
// end of the input returns errs.ErrTruncatedInput.
//
// # Build tags
//
// Zstandard uses github.com/klauspost/compress/zstd by default. Building with
// the gozstd tag (and cgo) switches to github.com/valyala/gozstd.
package compress
