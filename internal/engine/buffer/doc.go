// Package buffer provides the two-level text store of the editor and the
// document that coordinates it with the cursor.
//
// Text is kept as a gap buffer of lines, each line itself a gap buffer of
// bytes (see package gap). The line-level gap follows the cursor line and the
// byte-level gap of the current line follows the cursor column, so typing,
// erasing and moving by one position never shift the rest of the document.
//
// A Document owns its lines. Lines removed with RemoveLines are handed back
// to the caller, who becomes their only owner and may re-insert them later
// with InsertLines (undo does exactly that).
//
// Basic usage:
//
//	doc := buffer.NewDocument([]string{"abc"})
//	doc.InsertCharacter('X')          // "Xabc", cursor (0:1)
//	doc.SplitLine()                   // "X", "abc", cursor (1:0)
//	removed, _ := doc.RemoveLines(1)  // "X"
//	doc.InsertLines(1, removed)       // "X", "abc"
//
// Coordinates:
//
// Lines and columns are 0-indexed and columns count bytes. The cursor column
// may equal the line length, meaning "after the last character". Every index
// argument is clamped into range; no method returns an error for out of
// range input.
//
// Thread Safety:
//
// A Document is owned by the single editor control loop and is not safe for
// concurrent use.
package buffer
