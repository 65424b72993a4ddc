// Package codec is the engine's boundary to container formats. It defines
// the capability contract a format implementation must satisfy (Codec) and
// dispatches encode/decode/inference over a registry of them.
//
// # Built-in formats
//
// png, jpeg, gif, bmp and tiff support both directions; webp is decode-only
// because x/image ships no webp encoder. Additional formats can be added
// with Register; the engine itself never interprets container bytes.
//
// # Inference
//
// Infer recognizes a payload by its magic bytes, the same signatures the
// standard library's image.RegisterFormat uses ('?' matches any byte).
// FormatFromExtension maps file extensions for path-based dispatch in Open
// and Save.
//
// # Errors
//
// An unrecognized name, extension or signature is an
// UnsupportedFormatError; a payload the selected codec rejects is a
// CodecError wrapping the decoder's reason.
package codec
