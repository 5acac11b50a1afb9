// Package cursor provides the sequential big-endian reader and writer
// the typed codecs are built on.
//
// The wire formats handled by this module are all big-endian regardless
// of host byte order, and every field is a fixed width: 2 bytes for the
// integer header fields and digit groups, 4 or 8 bytes for floats. The
// reader walks an immutable byte buffer that the transport has already
// framed, so truncation is an explicit length check rather than a
// stream read; the writer appends to any io.Writer sink.
//
// Neither side retains the buffer or the sink beyond a single call, and
// neither carries state shared between values, so distinct cursors are
// safe to use from concurrent goroutines.
package cursor
