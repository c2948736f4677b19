package ally

import "strings"

// Store owns the complete in-memory configuration state of one
// controller: one profile per mode plus the per-side axis calibrations,
// which the firmware keeps outside the mode profiles. Setters validate
// and mutate state only; pushing state to the MCU is a Device
// operation. A Store is not safe for concurrent use on its own, the
// owning Device serializes access.
type Store struct {
	mode     Mode
	profiles [3]Profile

	// Calibrations are stored in wire order: sticks y-group first
	// (y-stable, y-min, y-max, x-stable, x-min, x-max), triggers
	// stable then max.
	stickCal [2][6]int16
	trigCal  [2][2]int16
}

// NewStore returns a Store seeded with the factory state: game mode
// active, xpad mappings for game and mouse, WASD mappings for wasd
// mode, open deadzones, linear response curves and full vibration.
func NewStore() *Store {
	s := &Store{mode: ModeGame}
	for i := range s.profiles {
		s.profiles[i] = defaultProfile()
	}
	s.profiles[ModeGame-1].applyMappingTable(xpadTable)
	s.profiles[ModeWASD-1].applyMappingTable(wasdTable)
	s.profiles[ModeMouse-1].applyMappingTable(xpadTable)

	// The boot image rebinds the macro pair on the game profile: M2
	// opens the Armoury overlay, M1 stays on its keyboard code.
	game := &s.profiles[ModeGame-1]
	if page, code, err := ResolveSymbol("PAD_XBOX"); err == nil {
		game.SetButton(PairM1M2, SideLeft, false, page, code)
	}
	if page, code, err := ResolveSymbol("KB_M1"); err == nil {
		game.SetButton(PairM1M2, SideRight, false, page, code)
	}
	return s
}

func (s *Store) profile() *Profile {
	return &s.profiles[s.mode-1]
}

// Mode returns the active controller mode.
func (s *Store) Mode() Mode {
	return s.mode
}

// SetMode selects the active mode and with it the profile slot that
// subsequent setters and pushes target.
func (s *Store) SetMode(m Mode) error {
	if !m.Valid() {
		return Validationf("set mode", "mode %d out of range 1-3", byte(m))
	}
	s.mode = m
	return nil
}

// SetButton binds one mapping sub-slot of the active profile. value is
// either a clearing sentinel, a canonical symbol name ("KB_W") or its
// attribute-surface form ("KB W").
func (s *Store) SetButton(btn Button, secondary bool, value string) error {
	if IsClearSymbol(value) {
		s.profile().ClearButton(btn.Pair, btn.Side, secondary)
		return nil
	}
	page, code, err := ResolveSymbol(NormalizeSymbol(strings.TrimSuffix(value, "\n")))
	if err != nil {
		return err
	}
	s.profile().SetButton(btn.Pair, btn.Side, secondary, page, code)
	return nil
}

// ButtonName returns the bound symbol of a sub-slot in its
// attribute-surface form ("KB W"). Unbound slots and codes the symbol
// table does not know yield the empty string.
func (s *Store) ButtonName(btn Button, secondary bool) string {
	page, code, ok := s.profile().Button(btn.Pair, btn.Side, secondary)
	if !ok {
		return ""
	}
	name, ok := SymbolName(page, code)
	if !ok {
		return ""
	}
	return DisplaySymbol(name)
}

// ResetMappings restores the built-in mapping table of the active
// mode: WASD layout for wasd mode, the stock xpad layout otherwise.
func (s *Store) ResetMappings() {
	switch s.mode {
	case ModeWASD:
		s.profile().applyMappingTable(wasdTable)
	default:
		s.profile().applyMappingTable(xpadTable)
	}
}

// SetDeadzone stores the inner/outer deadzone pair of one axis.
func (s *Store) SetDeadzone(axis Axis, inner, outer byte) error {
	if !axis.Valid() {
		return Validationf("set deadzone", "invalid axis")
	}
	if inner > MaxDeadzone || outer > MaxDeadzone {
		return Validationf("set deadzone", "values %d %d exceed %d", inner, outer, MaxDeadzone)
	}
	if inner > outer {
		return Validationf("set deadzone", "inner %d exceeds outer %d", inner, outer)
	}
	group := dzTrigger
	if axis.IsStick() {
		group = dzJoystick
	}
	s.profile().Deadzones[group][axis.Side()*2] = inner
	s.profile().Deadzones[group][axis.Side()*2+1] = outer
	return nil
}

// Deadzone returns the stored inner/outer pair of one axis.
func (s *Store) Deadzone(axis Axis) (inner, outer byte) {
	group := dzTrigger
	if axis.IsStick() {
		group = dzJoystick
	}
	return s.profile().Deadzones[group][axis.Side()*2], s.profile().Deadzones[group][axis.Side()*2+1]
}

// SetAntiDeadzone stores one stick's output floor, 0 to
// MaxAntiDeadzone.
func (s *Store) SetAntiDeadzone(side Side, value byte) error {
	if value > MaxAntiDeadzone {
		return Validationf("set anti-deadzone", "value %d exceeds %d", value, MaxAntiDeadzone)
	}
	s.profile().AntiDeadzones[side] = value
	return nil
}

// AntiDeadzone returns one stick's stored output floor.
func (s *Store) AntiDeadzone(side Side) byte {
	return s.profile().AntiDeadzones[side]
}

// SetVibeIntensity stores both rumble strengths. Either value out of
// range rejects the pair without touching stored state.
func (s *Store) SetVibeIntensity(left, right byte) error {
	if left > MaxVibe || right > MaxVibe {
		return Validationf("set vibration intensity", "values %d %d exceed %d", left, right, MaxVibe)
	}
	s.profile().VibeIntensity[SideLeft] = left
	s.profile().VibeIntensity[SideRight] = right
	return nil
}

// VibeIntensity returns the stored rumble strengths.
func (s *Store) VibeIntensity() (left, right byte) {
	return s.profile().VibeIntensity[SideLeft], s.profile().VibeIntensity[SideRight]
}

// SetCurvePoint stores one of the four response curve points (1-4) of
// one stick.
func (s *Store) SetCurvePoint(side Side, point int, move, response byte) error {
	if point < 1 || point > 4 {
		return Validationf("set response curve", "point %d out of range 1-4", point)
	}
	if move > MaxCurveValue || response > MaxCurveValue {
		return Validationf("set response curve", "values %d %d exceed %d", move, response, MaxCurveValue)
	}
	s.profile().ResponseCurves[side][(point-1)*2] = move
	s.profile().ResponseCurves[side][(point-1)*2+1] = response
	return nil
}

// CurvePoint returns one stored response curve point.
func (s *Store) CurvePoint(side Side, point int) (move, response byte) {
	if point < 1 || point > 4 {
		return 0, 0
	}
	return s.profile().ResponseCurves[side][(point-1)*2], s.profile().ResponseCurves[side][(point-1)*2+1]
}

// SetTurbo stores the turbo-fire interval of one button, 0 (off) to
// MaxTurbo. The trigger pair has no slot in the turbo block and is
// rejected.
func (s *Store) SetTurbo(btn Button, interval byte) error {
	if btn.Pair == PairTriggers {
		return Validationf("set turbo", "%s has no turbo slot", btn.Name)
	}
	if interval > MaxTurbo {
		return Validationf("set turbo", "interval %d exceeds %d", interval, MaxTurbo)
	}
	s.profile().TurboBtns[turboIndex(btn.Pair, btn.Side)] = interval
	return nil
}

// Turbo returns the stored turbo interval of one button. Buttons
// without a turbo slot read as 0.
func (s *Store) Turbo(btn Button) byte {
	if btn.Pair == PairTriggers {
		return 0
	}
	return s.profile().TurboBtns[turboIndex(btn.Pair, btn.Side)]
}

// SetStickCalibration stores a stick calibration in accessor order.
// The wire layout wants the y-group first, so storage swaps the
// groups.
func (s *Store) SetStickCalibration(axis Axis, xStable, xMin, xMax, yStable, yMin, yMax int16) error {
	if !axis.IsStick() {
		return Validationf("set calibration", "%s is not a stick axis", axis)
	}
	s.stickCal[axis.Side()] = [6]int16{yStable, yMin, yMax, xStable, xMin, xMax}
	return nil
}

// StickCalibration returns a stick calibration in accessor order
// (x-stable, x-min, x-max, y-stable, y-min, y-max).
func (s *Store) StickCalibration(axis Axis) (xStable, xMin, xMax, yStable, yMin, yMax int16) {
	c := s.stickCal[axis.Side()]
	return c[3], c[4], c[5], c[0], c[1], c[2]
}

// SetTriggerCalibration stores a trigger calibration (stable, max).
func (s *Store) SetTriggerCalibration(axis Axis, stable, max int16) error {
	if axis.IsStick() || !axis.Valid() {
		return Validationf("set calibration", "%s is not a trigger axis", axis)
	}
	s.trigCal[axis.Side()] = [2]int16{stable, max}
	return nil
}

// TriggerCalibration returns a stored trigger calibration.
func (s *Store) TriggerCalibration(axis Axis) (stable, max int16) {
	c := s.trigCal[axis.Side()]
	return c[0], c[1]
}

// ClearCalibration zeroes the stored calibration of one axis.
func (s *Store) ClearCalibration(axis Axis) error {
	if !axis.Valid() {
		return Validationf("reset calibration", "invalid axis")
	}
	if axis.IsStick() {
		s.stickCal[axis.Side()] = [6]int16{}
	} else {
		s.trigCal[axis.Side()] = [2]int16{}
	}
	return nil
}

// stickCalWire returns a stick calibration in wire order for the
// packet codec.
func (s *Store) stickCalWire(axis Axis) [6]int16 {
	return s.stickCal[axis.Side()]
}

// trigCalWire returns a trigger calibration in wire order.
func (s *Store) trigCalWire(axis Axis) [2]int16 {
	return s.trigCal[axis.Side()]
}
