package ally

// Geometry of the per-pair key mapping blocks.
const (
	PairCount       = 9
	MappingBlockLen = 44
	ButtonCodeLen   = 11
	TurboBlockLen   = 32
	turboStep       = 2
)

// Deadzone group indexes within Profile.Deadzones.
const (
	dzJoystick = 0
	dzTrigger  = 1
)

// Profile is the complete settings bundle for one controller mode.
//
// KeyMapping holds the exact payload bytes of the set-mapping packets:
// per pair four 11-byte sub-slots ordered left-primary, left-secondary,
// right-primary, right-secondary. A bound sub-slot starts with its code
// page and code; an unbound one is all zero.
type Profile struct {
	KeyMapping [PairCount][MappingBlockLen]byte
	// Deadzones holds one inner/outer quad per axis group, laid out as
	// left-inner, left-outer, right-inner, right-outer.
	Deadzones      [2][4]byte
	AntiDeadzones  [2]byte
	VibeIntensity  [2]byte
	ResponseCurves [2][8]byte
	TurboBtns      [TurboBlockLen]byte
}

// defaultProfile carries the factory analogue settings shared by all
// three modes: open deadzones, a linear response curve and full
// vibration strength.
func defaultProfile() Profile {
	var p Profile
	for group := range p.Deadzones {
		p.Deadzones[group][1] = MaxDeadzone
		p.Deadzones[group][3] = MaxDeadzone
	}
	for side := range p.ResponseCurves {
		copy(p.ResponseCurves[side][:], []byte{0x14, 0x14, 0x28, 0x28, 0x3c, 0x3c, 0x50, 0x50})
	}
	p.VibeIntensity = [2]byte{MaxVibe, MaxVibe}
	return p
}

func (p *Profile) subSlot(pair BtnPair, side Side, secondary bool) []byte {
	offs := 0
	if side == SideRight {
		offs = MappingBlockLen / 2
	}
	if secondary {
		offs += ButtonCodeLen
	}
	return p.KeyMapping[pair-1][offs : offs+ButtonCodeLen]
}

// SetButton binds one mapping sub-slot to a page-qualified code,
// clearing the remainder of the slot.
func (p *Profile) SetButton(pair BtnPair, side Side, secondary bool, page Page, code byte) {
	slot := p.subSlot(pair, side, secondary)
	for i := range slot {
		slot[i] = 0
	}
	slot[0] = byte(page)
	slot[1] = code
}

// ClearButton unbinds one mapping sub-slot.
func (p *Profile) ClearButton(pair BtnPair, side Side, secondary bool) {
	slot := p.subSlot(pair, side, secondary)
	for i := range slot {
		slot[i] = 0
	}
}

// Button returns the page-qualified code of a sub-slot. ok is false
// when the slot is unbound.
func (p *Profile) Button(pair BtnPair, side Side, secondary bool) (page Page, code byte, ok bool) {
	slot := p.subSlot(pair, side, secondary)
	if slot[0] == 0 {
		return 0, 0, false
	}
	return Page(slot[0]), slot[1], true
}

func turboIndex(pair BtnPair, side Side) int {
	return int(pair-1)*(2*turboStep) + int(side)*turboStep
}

// Button describes one remappable button position.
type Button struct {
	Name string
	Pair BtnPair
	Side Side
}

// Buttons enumerates the remappable buttons in attribute order. Note
// M2 occupies the left slot of its pair and M1 the right.
var Buttons = []Button{
	{"m2", PairM1M2, SideLeft},
	{"m1", PairM1M2, SideRight},
	{"a", PairAB, SideLeft},
	{"b", PairAB, SideRight},
	{"x", PairXY, SideLeft},
	{"y", PairXY, SideRight},
	{"lb", PairBumpers, SideLeft},
	{"rb", PairBumpers, SideRight},
	{"ls", PairSticks, SideLeft},
	{"rs", PairSticks, SideRight},
	{"lt", PairTriggers, SideLeft},
	{"rt", PairTriggers, SideRight},
	{"dpad_u", PairDPadUpDown, SideLeft},
	{"dpad_d", PairDPadUpDown, SideRight},
	{"dpad_l", PairDPadLeftRight, SideLeft},
	{"dpad_r", PairDPadLeftRight, SideRight},
	{"view", PairViewMenu, SideLeft},
	{"menu", PairViewMenu, SideRight},
}

// ButtonByName looks up a button position by its short name.
func ButtonByName(name string) (Button, bool) {
	for _, b := range Buttons {
		if b.Name == name {
			return b, true
		}
	}
	return Button{}, false
}

// mappingTable holds default {left, right} primary bindings per pair,
// as canonical symbol names. Empty strings leave a slot unbound.
type mappingTable [PairCount][2]string

// xpadTable mirrors the stock controller layout. The trigger pair has
// no gamepad codes, so it stays unbound.
var xpadTable = mappingTable{
	{"PAD_DPAD_UP", "PAD_DPAD_DOWN"},
	{"PAD_DPAD_LEFT", "PAD_DPAD_RIGHT"},
	{"PAD_LS", "PAD_RS"},
	{"PAD_LB", "PAD_RB"},
	{"PAD_A", "PAD_B"},
	{"PAD_X", "PAD_Y"},
	{"PAD_VIEW", "PAD_MENU"},
	{"KB_M2", "KB_M1"},
	{"", ""},
}

// wasdTable is the desktop-style layout used by WASD mode.
var wasdTable = mappingTable{
	{"KB_W", "KB_S"},
	{"KB_A", "KB_D"},
	{"KB_LSHIFT", "KB_LCTL"},
	{"MOUSE_WHEEL_UP", "MOUSE_WHEEL_DOWN"},
	{"KB_SPACE", "KB_ESC"},
	{"KB_E", "KB_Q"},
	{"KB_TAB", "KB_MENU"},
	{"KB_M2", "KB_M1"},
	{"MOUSE_RCLICK", "MOUSE_LCLICK"},
}

// applyMappingTable overwrites every primary binding from the table
// and clears all secondaries. Table entries are static package data,
// so symbol resolution cannot fail here.
func (p *Profile) applyMappingTable(table mappingTable) {
	for i, pairNames := range table {
		pair := BtnPair(i + 1)
		for side := SideLeft; side <= SideRight; side++ {
			name := pairNames[side]
			if name == "" {
				p.ClearButton(pair, side, false)
			} else if page, code, err := ResolveSymbol(name); err == nil {
				p.SetButton(pair, side, false, page, code)
			}
			p.ClearButton(pair, side, true)
		}
	}
}
