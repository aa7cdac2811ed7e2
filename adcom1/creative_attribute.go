package adcom1

// AdCOM 1.0 List: Creative Attributes
//
// Attributes describing a creative, either as needed for ad quality audits
// or declared as permitted or restricted by a placement.
type CreativeAttribute int8

const (
	AttrAudioAuto          CreativeAttribute = 1  // Audio Ad (Autoplay)
	AttrAudioUser          CreativeAttribute = 2  // Audio Ad (User Initiated)
	AttrExpandableAuto     CreativeAttribute = 3  // Expandable (Automatic)
	AttrExpandableClick    CreativeAttribute = 4  // Expandable (User Initiated - Click)
	AttrExpandableRollover CreativeAttribute = 5  // Expandable (User Initiated - Rollover)
	AttrVideoInBannerAuto  CreativeAttribute = 6  // In-Banner Video Ad (Autoplay)
	AttrVideoInBannerUser  CreativeAttribute = 7  // In-Banner Video Ad (User Initiated)
	AttrPop                CreativeAttribute = 8  // Pop (e.g., Over, Under, or Upon Exit)
	AttrProvocative        CreativeAttribute = 9  // Provocative or Suggestive Imagery
	AttrFlashing           CreativeAttribute = 10 // Shaky, Flashing, Flickering, Extreme Animation, Smileys
	AttrSurveys            CreativeAttribute = 11 // Surveys
	AttrTextOnly           CreativeAttribute = 12 // Text Only
	AttrInteractive        CreativeAttribute = 13 // User Interactive (e.g., Embedded Games)
	AttrWindowsDialog      CreativeAttribute = 14 // Windows Dialog or Alert Style
	AttrAudioOnOff         CreativeAttribute = 15 // Has Audio On/Off Button
	AttrSkippable          CreativeAttribute = 16 // Ad Provides Skip Button
	AttrFlash              CreativeAttribute = 17 // Adobe Flash
)
