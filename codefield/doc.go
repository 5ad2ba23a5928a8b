// Package codefield binds the editor widget to a form control.
//
// The binding keeps two flags. hasFocus suppresses incoming value updates
// while the user is typing; userChangedSinceLastBlur records whether a real
// edit (anything but a programmatic set) happened since the last blur, so
// focus changes without edits never write to the stored value.
package codefield
