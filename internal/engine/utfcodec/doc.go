// Package utfcodec converts cursor/diagnostic positions between UTF-8
// scalar columns (the editor's internal coordinate system) and UTF-16
// code-unit columns (the coordinate system the Language Server Protocol
// wire format requires).
//
// Promoted out of internal/engine/buffer's private
// utf16ColumnFromString/byteOffsetFromUTF16Column helpers into a
// standalone package so internal/lsp can depend on it without pulling
// in the buffer package.
package utfcodec
