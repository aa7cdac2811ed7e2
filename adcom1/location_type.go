package adcom1

// AdCOM 1.0 List: Location Types
//
// Options to indicate how the geographic information was determined.
type LocationType int8

const (
	LocationGPS  LocationType = 1 // GPS/Location Services
	LocationIP   LocationType = 2 // IP Address
	LocationUser LocationType = 3 // User Provided (e.g., registration data)
)
