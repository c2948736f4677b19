package ally

// USB identity of the ROG Ally gamepad configuration interface.
const (
	VendorASUS       uint16 = 0x0b05
	ProductAllyRC71L uint16 = 0x1abe
	ProductAllyX     uint16 = 0x1b4c

	// CfgUsagePage is the vendor usage page of the HID interface that
	// accepts configuration feature reports.
	CfgUsagePage uint16 = 0xff31
)

// Feature report framing. Configuration packets are fixed 64-byte
// frames: report id, code page, command, payload length, payload.
const (
	ReportID byte = 0x5a
	CodePage byte = 0xd1
	FrameLen      = 64
)

// Command bytes understood by the configuration code page.
const (
	cmdSetMode          byte = 0x01
	cmdSetMapping       byte = 0x02
	cmdSetJoystickDZ    byte = 0x04
	cmdSetTriggerDZ     byte = 0x05
	cmdSetVibeIntensity byte = 0x06
	cmdSetLEDs          byte = 0x08
	cmdCheckReady       byte = 0x0a
	cmdSetCalibration   byte = 0x0d
	cmdSetTurbo         byte = 0x0f
	cmdSetResponseCurve byte = 0x13
	cmdSetAntiDeadzone  byte = 0x18
)

// Payload lengths carried in byte 3 of each packet.
const (
	lenMode          byte = 0x01
	lenMapping       byte = 0x2c
	lenCheckReady    byte = 0x01
	lenDeadzone      byte = 0x04
	lenVibeIntensity byte = 0x02
	lenLEDs          byte = 0x0c
	lenCalStick      byte = 0x0e
	lenCalTrigger    byte = 0x06
	lenCalReset      byte = 0x02
	lenCalCommit     byte = 0x01
	lenTurbo         byte = 0x20
	lenResponseCurve byte = 0x09
	lenAntiDeadzone  byte = 0x02
)

// Calibration sub-commands carried in byte 4 of a calibration packet.
const (
	calOpSet    byte = 0x01
	calOpReset  byte = 0x02
	calOpCommit byte = 0x03
)

// Page is a button code namespace. Codes are only meaningful within
// their page; several numeric codes repeat across pages.
type Page byte

const (
	PageGamepad  Page = 0x01
	PageKeyboard Page = 0x02
	PageMouse    Page = 0x03
	PageMedia    Page = 0x05
)

func (p Page) String() string {
	switch p {
	case PageGamepad:
		return "gamepad"
	case PageKeyboard:
		return "keyboard"
	case PageMouse:
		return "mouse"
	case PageMedia:
		return "media"
	default:
		return "invalid"
	}
}

// Valid reports whether p is one of the four button code pages.
func (p Page) Valid() bool {
	switch p {
	case PageGamepad, PageKeyboard, PageMouse, PageMedia:
		return true
	default:
		return false
	}
}

// Mode selects which profile the controller runs and which profile
// slot configuration reads and writes target.
type Mode byte

const (
	ModeGame  Mode = 0x01
	ModeWASD  Mode = 0x02
	ModeMouse Mode = 0x03
)

func (m Mode) String() string {
	switch m {
	case ModeGame:
		return "game"
	case ModeWASD:
		return "wasd"
	case ModeMouse:
		return "mouse"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of the three controller modes.
func (m Mode) Valid() bool {
	return m >= ModeGame && m <= ModeMouse
}

// BtnPair identifies one of the nine remappable button pairs. The
// controller always configures buttons two at a time.
type BtnPair byte

const (
	PairDPadUpDown    BtnPair = 0x01
	PairDPadLeftRight BtnPair = 0x02
	PairSticks        BtnPair = 0x03
	PairBumpers       BtnPair = 0x04
	PairAB            BtnPair = 0x05
	PairXY            BtnPair = 0x06
	PairViewMenu      BtnPair = 0x07
	PairM1M2          BtnPair = 0x08
	PairTriggers      BtnPair = 0x09
)

func (p BtnPair) String() string {
	switch p {
	case PairDPadUpDown:
		return "dpad_u_d"
	case PairDPadLeftRight:
		return "dpad_l_r"
	case PairSticks:
		return "ls_rs"
	case PairBumpers:
		return "lb_rb"
	case PairAB:
		return "a_b"
	case PairXY:
		return "x_y"
	case PairViewMenu:
		return "view_menu"
	case PairM1M2:
		return "m1_m2"
	case PairTriggers:
		return "lt_rt"
	default:
		return "invalid"
	}
}

// Valid reports whether p names a real button pair.
func (p BtnPair) Valid() bool {
	return p >= PairDPadUpDown && p <= PairTriggers
}

// Side selects the left or right member of a pair or axis group.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Axis identifies a calibratable analogue axis group.
type Axis byte

const (
	AxisStickLeft    Axis = 0x01
	AxisStickRight   Axis = 0x02
	AxisTriggerLeft  Axis = 0x03
	AxisTriggerRight Axis = 0x04
)

func (a Axis) String() string {
	switch a {
	case AxisStickLeft:
		return "js_left"
	case AxisStickRight:
		return "js_right"
	case AxisTriggerLeft:
		return "tr_left"
	case AxisTriggerRight:
		return "tr_right"
	default:
		return "invalid"
	}
}

// Valid reports whether a names a real axis.
func (a Axis) Valid() bool {
	return a >= AxisStickLeft && a <= AxisTriggerRight
}

// IsStick reports whether a is one of the two thumbstick axes.
func (a Axis) IsStick() bool {
	return a == AxisStickLeft || a == AxisStickRight
}

// Side returns the body side the axis sits on.
func (a Axis) Side() Side {
	if a == AxisStickRight || a == AxisTriggerRight {
		return SideRight
	}
	return SideLeft
}

// ParseAxis resolves an axis name as printed by Axis.String.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "js_left":
		return AxisStickLeft, nil
	case "js_right":
		return AxisStickRight, nil
	case "tr_left":
		return AxisTriggerLeft, nil
	case "tr_right":
		return AxisTriggerRight, nil
	}
	return 0, Validationf("parse axis", "unknown axis %q (want js_left, js_right, tr_left or tr_right)", s)
}

// ParseMode resolves a mode given as its name or its wire value 1-3.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "game", "1":
		return ModeGame, nil
	case "wasd", "2":
		return ModeWASD, nil
	case "mouse", "3":
		return ModeMouse, nil
	}
	return 0, Validationf("parse mode", "unknown mode %q (want game, wasd or mouse)", s)
}

// Value ranges accepted by the configuration store.
const (
	MaxDeadzone     = 64
	MaxAntiDeadzone = 32
	MaxVibe         = 64
	MaxCurveValue   = 64
	MaxTurbo        = 16
	MaxBrightness   = 3
)
