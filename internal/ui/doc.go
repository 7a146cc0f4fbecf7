// Package ui is the Bubble Tea front end of the phonics board.
//
// Core pieces:
//   - View: a screen region with its own model, update and view (Elm-style)
//   - Panel: a bounded region of the board layout that hosts a View
//   - GridView: letter buttons sized by layout.ButtonSize, scrollable
//   - DisplayView: the selected letter in standard and cursive forms
//   - OverlayStack: settings panel, help and confirmation modals
//   - KeybindRegistry: mode-filtered key bindings rendered with bubbles/help
package ui
