// Package dispatcher turns key events into editor commands.
//
// The dispatcher is the only producer of commands. It interprets keys
// according to the current mode:
//
//   - Normal: counts ("3"), motions (h j k l 0 $ gg G), edits (x X J r),
//     operators (dd yy y$), put (p P), undo (u) and redo (Ctrl-R), mode
//     entry (i a A I o O R :) and macros (q{reg}, @{reg}, @@)
//   - Insert and Replace: typed characters run as batch commands, so a
//     typing run undoes as one unit together with the command that entered
//     the mode; Enter and Esc mark flush points
//   - Command: the ":" line with :w, :q, :q!, :wq, :x, :u, :redo and :{n}
//
// Each call to Handle runs to completion before the next key is read.
package dispatcher
