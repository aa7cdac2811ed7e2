package adcom1

// AdCOM 1.0 List: Playback Methods
//
// Media playback methods.
type PlaybackMethod int8

const (
	PlaybackPageLoadSoundOn  PlaybackMethod = 1 // Initiates on Page Load with Sound On
	PlaybackPageLoadSoundOff PlaybackMethod = 2 // Initiates on Page Load with Sound Off by Default
	PlaybackClickSoundOn     PlaybackMethod = 3 // Initiates on Click with Sound On
	PlaybackMouseSoundOn     PlaybackMethod = 4 // Initiates on Mouse-Over with Sound On
	PlaybackViewportSoundOn  PlaybackMethod = 5 // Initiates on Entering Viewport with Sound On
	PlaybackViewportSoundOff PlaybackMethod = 6 // Initiates on Entering Viewport with Sound Off by Default
)
