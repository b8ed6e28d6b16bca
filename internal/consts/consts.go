package consts

const (
	DefaultPoints  = 1000  // Resample grid size
	MagnitudeFloor = 1e-20 // Added before log10 so a zero vector stays finite (dB)
	DefaultTimeout = 30    // Simulator timeout (s)
)
