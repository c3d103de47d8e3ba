// Package termbackend renders a trellis scene into a terminal cell grid.
//
// The backend keeps a widget tree mirroring the scene's node tree, paints it
// into a back buffer on Present, and flushes only the cells that changed
// since the previous frame using ANSI escape sequences. All measurements are
// in terminal cells: one cell per column, one per row, with grapheme cluster
// widths from uniseg so CJK and emoji content lines up.
//
// Interactive widgets form a focus ring cycled with Tab. Enter activates the
// focused button or list row, arrow keys move picker and list selections,
// and printable input edits the focused text field.
package termbackend
