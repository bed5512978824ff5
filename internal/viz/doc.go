// Package viz is the terminal live view of the lab.
//
//   - [Model]: bubbletea model running one scenario at a time
//   - [Scheduler]: frame scheduler on top of tea.Tick
//   - [Canvas], [Backend]: braille pixel canvas that replays render frames
//   - Themes selected by name from the config file or with T
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	R          - Reset to initial state
//	Tab, 1-3   - Switch scenario
//	Up/Down    - Select incline slider
//	Left/Right - Move incline slider
//	T          - Cycle color themes
//	?          - Show help overlay
package viz
