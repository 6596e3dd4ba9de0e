// Package macro provides macro recording and playback.
//
// Macros are sequences of key events stored in 62 registers named by the
// letters a-z, A-Z and the digits 0-9. Every register is an independent
// slot; uppercase names do not alias lowercase ones.
//
// # Recording
//
//	rec := macro.NewRecorder(macro.NewRegisters())
//	rec.Start('a')        // q a
//	rec.Record(ev)        // every key typed while recording
//	rec.Stop()            // q
//
// # Playback
//
//	player := macro.NewPlayer(rec)
//	player.Play('a', 3, dispatch) // 3@a
//	player.PlayLast(1, dispatch)  // @@
//
// Playback is synchronous: the handler receives each event in order on the
// caller's goroutine. Macros may invoke other macros up to MaxDepth levels.
//
// # Persistence
//
// Save and Load store the registers as JSON with the keys of each macro
// written in Vim notation, e.g. {"register": "a", "keys": "0i// <Esc>j"}.
package macro
