package adcom1

// AdCOM 1.0 List: Linearity Modes
//
// Options for media linearity, typically for video.
type LinearityMode int8

const (
	LinearityLinear    LinearityMode = 1 // Linear (i.e., In-Stream such as Pre-Roll, Mid-Roll, Post-Roll)
	LinearityNonLinear LinearityMode = 2 // Non-Linear (i.e., Overlay)
)
