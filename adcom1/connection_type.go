package adcom1

// AdCOM 1.0 List: Connection Types
//
// Options for the type of device connectivity.
type ConnectionType int8

const (
	ConnectionWired       ConnectionType = 1 // Ethernet; Wired Connection
	ConnectionWIFI        ConnectionType = 2 // WIFI
	ConnectionCellUnknown ConnectionType = 3 // Cellular Network - Unknown Generation
	ConnectionCell2G      ConnectionType = 4 // Cellular Network - 2G
	ConnectionCell3G      ConnectionType = 5 // Cellular Network - 3G
	ConnectionCell4G      ConnectionType = 6 // Cellular Network - 4G
	ConnectionCell5G      ConnectionType = 7 // Cellular Network - 5G
)
