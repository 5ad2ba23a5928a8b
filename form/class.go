package form

// Marker classes understood by the host.
const (
	ClassReadonly = "xforms-readonly"
	ClassVisited  = "xforms-visited"
	ClassDisabled = "xforms-disabled"

	// ClassTextarea marks the field element holding a control's stored value.
	ClassTextarea = "xforms-textarea"
)
