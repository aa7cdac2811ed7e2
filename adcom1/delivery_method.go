package adcom1

// AdCOM 1.0 List: Delivery Methods
//
// Options for the delivery of video or audio content.
type DeliveryMethod int8

const (
	DeliveryStreaming   DeliveryMethod = 1 // Streaming
	DeliveryProgressive DeliveryMethod = 2 // Progressive
	DeliveryDownload    DeliveryMethod = 3 // Download
)
