package ui

import (
	"math"
	"strconv"

	"fractal-gallery/internal/core"
)

// NextValue returns the value one step in direction from current, and whether
// it stays inside the control's bounds. Integer controls step by whole
// numbers; float results are rounded to six decimals so repeated steps do not
// drift.
func NextValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Round(step)
	}
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.1
		}
	}
	target := current + float64(direction)*step
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	} else {
		target = math.Round(target*1e6) / 1e6
	}
	const slack = 1e-9
	if ctrl.HasMin && target < ctrl.Min-slack {
		return current, false
	}
	if ctrl.HasMax && target > ctrl.Max+slack {
		return current, false
	}
	return target, true
}

// FormatValue renders v the way scenes report parameters of type t.
func FormatValue(t core.ParamType, v float64) string {
	if t == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
