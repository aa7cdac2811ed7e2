package adcom1

// AdCOM 1.0 List: Expandable Directions
//
// Directions in which an expandable ad may expand, given the positioning of
// the ad unit on the page and constraints imposed by the content.
type ExpandableDirection int8

const (
	ExpandableLeft       ExpandableDirection = 1 // Left
	ExpandableRight      ExpandableDirection = 2 // Right
	ExpandableUp         ExpandableDirection = 3 // Up
	ExpandableDown       ExpandableDirection = 4 // Down
	ExpandableFullScreen ExpandableDirection = 5 // Full Screen
	ExpandableMinimize   ExpandableDirection = 6 // Resize/Minimize
)
