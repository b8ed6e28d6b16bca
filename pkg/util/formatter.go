package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

// FormatMagnitudePhase formats a dB magnitude and a phase in degrees.
func FormatMagnitudePhase(name string, magDB, phase float64) string {
	return fmt.Sprintf("%s=%sdB<%sdeg", name, FormatMagnitude(magDB), FormatPhase(phase))
}

func FormatMagnitude(value float64) string {
	if math.Abs(value) >= 1000 || (math.Abs(value) < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}

var engPrefix = map[int]string{
	-24: "y", -21: "z", -18: "a", -15: "f", -12: "p", -9: "n", -6: "u", -3: "m",
	0: "", 3: "k", 6: "M", 9: "G", 12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
}

// FormatEng writes value in engineering notation with an SI prefix and no
// separator: 1500 -> "1.500k", -0.002 -> "-2.000m".
func FormatEng(value float64, places int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprint(value)
	}
	pow := 0
	if value != 0 {
		pow = int(math.Floor(math.Log10(math.Abs(value))/3)) * 3
	}
	pow = max(-24, min(24, pow))

	mant := value / math.Pow(10, float64(pow))
	// 999.9996 rounds to 1000.000; move to the next prefix.
	scale := math.Pow(10, float64(places))
	if math.Round(math.Abs(mant)*scale)/scale >= 1000 && pow < 24 {
		pow += 3
		mant = value / math.Pow(10, float64(pow))
	}
	return fmt.Sprintf("%.*f%s", places, mant, engPrefix[pow])
}
