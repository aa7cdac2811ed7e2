package adcom1

// AdCOM 1.0 List: Volume Normalization Modes
//
// Types of volume normalization modes, typically for audio.
type VolumeNormalizationMode int8

const (
	VolumeNormNone     VolumeNormalizationMode = 0 // None
	VolumeNormAverage  VolumeNormalizationMode = 1 // Ad Volume Average Normalized to Content
	VolumeNormPeak     VolumeNormalizationMode = 2 // Ad Volume Peak Normalized to Content
	VolumeNormLoudness VolumeNormalizationMode = 3 // Ad Loudness Normalized to Content
	VolumeNormCustom   VolumeNormalizationMode = 4 // Custom Volume Normalization
)

// Ptr returns pointer to own value.
func (m VolumeNormalizationMode) Ptr() *VolumeNormalizationMode {
	return &m
}

// Val safely dereferences pointer, returning default value (VolumeNormNone) for nil.
func (m *VolumeNormalizationMode) Val() VolumeNormalizationMode {
	if m == nil {
		return VolumeNormNone
	}
	return *m
}
