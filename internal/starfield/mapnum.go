package starfield

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// The result is not clamped, so values outside the input domain land outside
// the output range proportionally. inMin and inMax must differ.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
