// Package viz hosts a sketch session in the terminal.
//
// The package implements the session display using the Bubble Tea framework:
//
//   - [App]: the Bubble Tea model wiring keys, mouse and resize to a
//     [session.Controller]
//   - [Canvas]: Braille-based pixel canvas implementing [sketch.Surface]
//   - [Recorder]: GIF capture of painted frames
//
// One character cell covers CellWidth x CellHeight logical pixels, so the
// 64 pixel topbar band is exactly [TopbarRows] rows.
//
// # Scheduling
//
// While the active animation loops, a single tea.Tick chain drives
// Controller.Tick at the configured frame rate. While it is static no chain
// runs; a one-shot tick fires at the next timer deadline instead, so the
// info panel still hides on time.
//
// # Key Bindings
//
//	Tab/L/→       - Next animation
//	Shift+Tab/H/← - Previous animation
//	1-9           - Select animation by position
//	D             - Toggle dark/light theme
//	T             - Show/hide topbar
//	Esc           - Dismiss info panel
//	R             - Reset the current animation
//	G             - Toggle GIF recording
//	Q             - Quit
package viz
