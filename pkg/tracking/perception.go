package tracking

import "fmt"

// HSV is an 8-bit hue/saturation/value triple in OpenCV's convention:
// hue in [0,179], saturation and value in [0,255].
type HSV struct {
	H, S, V uint8
}

func (c HSV) String() string {
	return fmt.Sprintf("HSV(%d,%d,%d)", c.H, c.S, c.V)
}

// ColorRange is an inclusive HSV interval used to build a mask.
type ColorRange struct {
	Lower HSV
	Upper HSV
}

// RangeAround builds the range used to track a sampled color.
// Hue expands by sensitivity in both directions, clamped to [0, HueMax].
// Saturation and value are fixed to [MinSaturation, ChannelMax] and
// [MinValue, ChannelMax] regardless of the sample.
func RangeAround(sample HSV, sensitivity int) ColorRange {
	h := int(sample.H)
	return ColorRange{
		Lower: HSV{H: uint8(clamp(h-sensitivity, 0, HueMax)), S: MinSaturation, V: MinValue},
		Upper: HSV{H: uint8(clamp(h+sensitivity, 0, HueMax)), S: ChannelMax, V: ChannelMax},
	}
}

func (r ColorRange) String() string {
	return fmt.Sprintf("[%v..%v]", r.Lower, r.Upper)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
