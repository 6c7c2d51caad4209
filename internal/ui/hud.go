//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"dungenon/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledFill = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledText = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the control and statistics panel to the right of the
// simulation view. Parameters with a matching control get -/+ buttons; the
// rest are listed read-only under their group name.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	controlKeys  map[string]bool
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	width = max(width, 0)
	h := &HUD{sim: sim, width: width, controlKeys: map[string]bool{}}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = "Controls"
	if sim != nil && sim.Name() != "" {
		name := sim.Name()
		h.title = strings.ToUpper(name[:1]) + name[1:]
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus})
			h.controlKeys[ctrl.Key] = true
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	y := h.drawControls()
	h.drawReadouts(y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	params := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			params[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := params[state.control.Key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.setValue(parsed)
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case p.In(state.minusRect):
			h.adjust(state, -1)
			return
		case p.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// target computes the value one step in direction, clamped to the control
// bounds. ok is false when the value cannot move.
func (h *HUD) target(state *controlState, direction int) (float64, bool) {
	if !state.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.number + float64(direction)*step
	if ctrl.HasMin {
		next = max(next, ctrl.Min)
	}
	if ctrl.HasMax {
		next = min(next, ctrl.Max)
	}
	if math.Abs(next-state.number) < 1e-9 {
		return 0, false
	}
	return next, true
}

func (h *HUD) adjust(state *controlState, direction int) {
	next, ok := h.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		ok = h.intSetter.SetIntParameter(state.control.Key, int(next))
	case core.ParamTypeFloat:
		ok = h.floatSetter.SetFloatParameter(state.control.Key, next)
	}
	if ok {
		state.setValue(next)
	}
}

// drawControls paints the adjustable rows and returns the y coordinate below
// them.
func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		return controlsTop
	}
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, baseline, valueColor)

		_, minusOK := h.target(state, -1)
		_, plusOK := h.target(state, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}
	return controlsTop + len(h.controls)*lineHeight
}

// drawReadouts lists every parameter that has no control, grouped.
func (h *HUD) drawReadouts(y int) {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		var rows []core.Parameter
		for _, p := range group.Params {
			if !h.controlKeys[p.Key] {
				rows = append(rows, p)
			}
		}
		if len(rows) == 0 {
			continue
		}
		y += readoutSpacing
		if y > h.lastHeight {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		for _, p := range rows {
			y += readoutLine
			if y > h.lastHeight {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, dimColor)
			valueX := h.width - panelPadding - text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, valueX, y, labelColor)
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = disabledFill, disabledText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

type controlState struct {
	control core.ParameterControl
	value   string

	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *controlState) setValue(v float64) {
	s.number = v
	s.hasValue = true
	if s.control.Type == core.ParamTypeInt {
		s.value = strconv.Itoa(int(math.Round(v)))
		return
	}
	precision := 1
	switch step := s.control.Step; {
	case step > 0 && step < 0.001:
		precision = 4
	case step > 0 && step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	s.value = strconv.FormatFloat(v, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutSpacing = 24
	readoutLine    = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
