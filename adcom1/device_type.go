package adcom1

// AdCOM 1.0 List: Device Types
//
// Type of device from which the impression originated.
//
// This list has values derived from the Inventory Quality Guidelines (IQG).
// Practitioners should keep in sync with updates to the IQG values.
type DeviceType int8

const (
	DeviceMobileTablet DeviceType = 1 // Mobile/Tablet - General
	DevicePC           DeviceType = 2 // Personal Computer
	DeviceTV           DeviceType = 3 // Connected TV
	DevicePhone        DeviceType = 4 // Phone
	DeviceTablet       DeviceType = 5 // Tablet
	DeviceConnected    DeviceType = 6 // Connected Device
	DeviceSetTopBox    DeviceType = 7 // Set Top Box
)
