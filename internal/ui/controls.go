package ui

import (
	"image"
	"math"
	"strconv"

	"infinite-lights/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// Controls holds the +/- rows of the parameter panel. It is independent of
// the engine so layout and stepping can run headless.
type Controls struct {
	states []controlState
	setter core.FloatParameterSetter
	width  int
}

// NewControls builds rows for every control src exposes. src may implement
// core.ParameterControlsProvider and core.FloatParameterSetter.
func NewControls(src any, width int) *Controls {
	c := &Controls{width: width}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		c.setter = setter
	}
	c.layout()
	return c
}

// Len returns the number of rows.
func (c *Controls) Len() int { return len(c.states) }

// Bottom is the first y below the last row.
func (c *Controls) Bottom() int { return controlsTop + len(c.states)*lineHeight }

// Value returns the formatted value of row i.
func (c *Controls) Value(i int) string { return c.states[i].value }

// Refresh reads current values out of snap.
func (c *Controls) Refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		st := &c.states[i]
		st.hasValue = false
		st.value = "--"
		param, ok := snap.Lookup(st.control.Key)
		if !ok || param.Type != core.ParamTypeFloat {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		st.floatValue = parsed
		st.value = formatFloat(st.control, parsed)
		st.hasValue = true
	}
}

// Click applies the button under (x, y), in panel coordinates. It reports
// whether a button was hit.
func (c *Controls) Click(x, y int) bool {
	for i := range c.states {
		st := &c.states[i]
		if !st.hasValue {
			continue
		}
		if pointInRect(x, y, st.minusRect) {
			c.adjust(st, -1)
			return true
		}
		if pointInRect(x, y, st.plusRect) {
			c.adjust(st, 1)
			return true
		}
	}
	return false
}

func (c *Controls) adjust(st *controlState, direction int) {
	if c.setter == nil {
		return
	}
	target := st.control.Clamp(st.floatValue + float64(direction)*step(st.control))
	if math.Abs(target-st.floatValue) < 1e-9 {
		return
	}
	if c.setter.SetFloatParameter(st.control.Key, target) {
		st.floatValue = target
		st.value = formatFloat(st.control, target)
	}
}

func (c *Controls) canAdjust(st *controlState, direction int) bool {
	if c.setter == nil || !st.hasValue {
		return false
	}
	target := st.floatValue + float64(direction)*step(st.control)
	if st.control.HasMin && direction < 0 && target < st.control.Min {
		return false
	}
	if st.control.HasMax && direction > 0 && target > st.control.Max {
		return false
	}
	return true
}

func (c *Controls) layout() {
	for i := range c.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(c.width-panelPadding-buttonSize, buttonY, c.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = top
		c.states[i].minusRect = minusRect
		c.states[i].plusRect = plusRect
	}
}

func step(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch s := step(ctrl); {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
