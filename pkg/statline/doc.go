// Package statline renders multiple concurrently-active status lines
// (progress indicators, spinners) into a fixed, non-scrolling region at
// the bottom of stderr while ordinary log output keeps scrolling above.
//
// Producers register a Renderer with a Drawer and hold the returned
// Guard for as long as the line should stay on screen. A single
// background loop redraws all live entries; it starts when the first
// entry arrives and stops on its own once the last guard is released.
package statline
