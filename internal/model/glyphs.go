package model

// Box-drawing pieces used by the text renderer.
// Every piece is three columns wide so nested prefixes line up.
const (
	ConnectorMiddle = "├─ " // Sibling that is followed by another sibling
	ConnectorLast   = "└─ " // Last sibling in its group
	IndentOpen      = "│  " // Under a non-last ancestor
	IndentClosed    = "   " // Under a last ancestor
	DirSuffix       = "/"   // Appended to directory names when classifying
)
