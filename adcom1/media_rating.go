package adcom1

// AdCOM 1.0 List: Media Ratings
//
// Media ratings used in describing content based on the IQG 2.1
// categorization.
type MediaRating int8

const (
	MediaRatingAll    MediaRating = 1 // All Audiences
	MediaRatingOver12 MediaRating = 2 // Everyone Over Age 12
	MediaRatingMature MediaRating = 3 // Mature Audiences
)
