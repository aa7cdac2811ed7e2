package adcom1

// AdCOM 1.0 List: Location Services
//
// Services and/or vendors used for resolving IP addresses to geolocations.
type LocationService int8

const (
	LocationServiceIP2Location LocationService = 1 // ip2location
	LocationServiceNeustar     LocationService = 2 // Neustar (Quova)
	LocationServiceMaxMind     LocationService = 3 // MaxMind
	LocationServiceNetAcuity   LocationService = 4 // NetAcuity (Digital Element)
)
