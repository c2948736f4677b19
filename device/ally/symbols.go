package ally

import "strings"

// symbols lists every bindable button and key the controller firmware
// understands, in firmware table order. A few numeric codes repeat
// within the keyboard page (0x2d, 0x91); reverse lookup resolves those
// to the earliest entry.
var symbols = []struct {
	name string
	page Page
	code byte
}{
	{"PAD_A", PageGamepad, 0x01},
	{"PAD_B", PageGamepad, 0x02},
	{"PAD_X", PageGamepad, 0x03},
	{"PAD_Y", PageGamepad, 0x04},
	{"PAD_LB", PageGamepad, 0x05},
	{"PAD_RB", PageGamepad, 0x06},
	{"PAD_LS", PageGamepad, 0x07},
	{"PAD_RS", PageGamepad, 0x08},
	{"PAD_DPAD_UP", PageGamepad, 0x09},
	{"PAD_DPAD_DOWN", PageGamepad, 0x0a},
	{"PAD_DPAD_LEFT", PageGamepad, 0x0b},
	{"PAD_DPAD_RIGHT", PageGamepad, 0x0c},
	{"PAD_VIEW", PageGamepad, 0x11},
	{"PAD_MENU", PageGamepad, 0x12},
	{"PAD_XBOX", PageGamepad, 0x13},

	{"KB_M1", PageKeyboard, 0x8f},
	{"KB_M2", PageKeyboard, 0x8e},
	{"KB_ESC", PageKeyboard, 0x76},
	{"KB_F1", PageKeyboard, 0x50},
	{"KB_F2", PageKeyboard, 0x60},
	{"KB_F3", PageKeyboard, 0x40},
	{"KB_F4", PageKeyboard, 0x0c},
	{"KB_F5", PageKeyboard, 0x03},
	{"KB_F6", PageKeyboard, 0x0b},
	{"KB_F7", PageKeyboard, 0x80},
	{"KB_F8", PageKeyboard, 0x0a},
	{"KB_F9", PageKeyboard, 0x01},
	{"KB_F10", PageKeyboard, 0x09},
	{"KB_F11", PageKeyboard, 0x78},
	{"KB_F12", PageKeyboard, 0x07},
	{"KB_F14", PageKeyboard, 0x10},
	{"KB_F15", PageKeyboard, 0x18},
	{"KB_BACKTICK", PageKeyboard, 0x0e},
	{"KB_1", PageKeyboard, 0x16},
	{"KB_2", PageKeyboard, 0x1e},
	{"KB_3", PageKeyboard, 0x26},
	{"KB_4", PageKeyboard, 0x25},
	{"KB_5", PageKeyboard, 0x2e},
	{"KB_6", PageKeyboard, 0x36},
	{"KB_7", PageKeyboard, 0x3d},
	{"KB_8", PageKeyboard, 0x3e},
	{"KB_9", PageKeyboard, 0x46},
	{"KB_0", PageKeyboard, 0x45},
	{"KB_HYPHEN", PageKeyboard, 0x4e},
	{"KB_EQUALS", PageKeyboard, 0x55},
	{"KB_BACKSPACE", PageKeyboard, 0x66},
	{"KB_TAB", PageKeyboard, 0x0d},
	{"KB_Q", PageKeyboard, 0x15},
	{"KB_W", PageKeyboard, 0x1d},
	{"KB_E", PageKeyboard, 0x24},
	{"KB_R", PageKeyboard, 0x2d},
	{"KB_T", PageKeyboard, 0x2d},
	{"KB_Y", PageKeyboard, 0x35},
	{"KB_U", PageKeyboard, 0x3c},
	{"KB_I", PageKeyboard, 0x43},
	{"KB_O", PageKeyboard, 0x44},
	{"KB_P", PageKeyboard, 0x4d},
	{"KB_LBRACKET", PageKeyboard, 0x54},
	{"KB_RBRACKET", PageKeyboard, 0x5b},
	{"KB_BACKSLASH", PageKeyboard, 0x5d},
	{"KB_CAPS", PageKeyboard, 0x58},
	{"KB_A", PageKeyboard, 0x1c},
	{"KB_S", PageKeyboard, 0x1b},
	{"KB_D", PageKeyboard, 0x23},
	{"KB_F", PageKeyboard, 0x2b},
	{"KB_G", PageKeyboard, 0x34},
	{"KB_H", PageKeyboard, 0x33},
	{"KB_J", PageKeyboard, 0x3b},
	{"KB_K", PageKeyboard, 0x42},
	{"KB_L", PageKeyboard, 0x4b},
	{"KB_SEMI", PageKeyboard, 0x4c},
	{"KB_QUOTE", PageKeyboard, 0x52},
	{"KB_RET", PageKeyboard, 0x5a},
	{"KB_LSHIFT", PageKeyboard, 0x88},
	{"KB_Z", PageKeyboard, 0x1a},
	{"KB_X", PageKeyboard, 0x22},
	{"KB_C", PageKeyboard, 0x21},
	{"KB_V", PageKeyboard, 0x2a},
	{"KB_B", PageKeyboard, 0x32},
	{"KB_N", PageKeyboard, 0x31},
	{"KB_M", PageKeyboard, 0x3a},
	{"KB_COMMA", PageKeyboard, 0x41},
	{"KB_PERIOD", PageKeyboard, 0x49},
	{"KB_FWDSLASH", PageKeyboard, 0x4a},
	{"KB_RSHIFT", PageKeyboard, 0x89},
	{"KB_LCTL", PageKeyboard, 0x8c},
	{"KB_META", PageKeyboard, 0x82},
	{"KB_LALT", PageKeyboard, 0xba},
	{"KB_SPACE", PageKeyboard, 0x29},
	{"KB_RALT", PageKeyboard, 0x8b},
	{"KB_MENU", PageKeyboard, 0x84},
	{"KB_RCTL", PageKeyboard, 0x8d},
	{"KB_PRNTSCN", PageKeyboard, 0xc3},
	{"KB_SCRLCK", PageKeyboard, 0x7e},
	{"KB_PAUSE", PageKeyboard, 0x91},
	{"KB_INS", PageKeyboard, 0xc2},
	{"KB_HOME", PageKeyboard, 0x94},
	{"KB_PGUP", PageKeyboard, 0x96},
	{"KB_DEL", PageKeyboard, 0xc0},
	{"KB_END", PageKeyboard, 0x95},
	{"KB_PGDWN", PageKeyboard, 0x97},
	{"KB_UP_ARROW", PageKeyboard, 0x99},
	{"KB_DOWN_ARROW", PageKeyboard, 0x98},
	{"KB_LEFT_ARROW", PageKeyboard, 0x91},
	{"KB_RIGHT_ARROW", PageKeyboard, 0x9b},
	{"NUMPAD_LOCK", PageKeyboard, 0x77},
	{"NUMPAD_FWDSLASH", PageKeyboard, 0x90},
	{"NUMPAD_ASTERISK", PageKeyboard, 0x7c},
	{"NUMPAD_HYPHEN", PageKeyboard, 0x7b},
	{"NUMPAD_0", PageKeyboard, 0x70},
	{"NUMPAD_1", PageKeyboard, 0x69},
	{"NUMPAD_2", PageKeyboard, 0x72},
	{"NUMPAD_3", PageKeyboard, 0x7a},
	{"NUMPAD_4", PageKeyboard, 0x6b},
	{"NUMPAD_5", PageKeyboard, 0x73},
	{"NUMPAD_6", PageKeyboard, 0x74},
	{"NUMPAD_7", PageKeyboard, 0x6c},
	{"NUMPAD_8", PageKeyboard, 0x75},
	{"NUMPAD_9", PageKeyboard, 0x7d},
	{"NUMPAD_PLUS", PageKeyboard, 0x79},
	{"NUMPAD_ENTER", PageKeyboard, 0x81},
	{"NUMPAD_PERIOD", PageKeyboard, 0x71},

	{"MOUSE_LCLICK", PageMouse, 0x01},
	{"MOUSE_RCLICK", PageMouse, 0x02},
	{"MOUSE_MCLICK", PageMouse, 0x03},
	{"MOUSE_WHEEL_UP", PageMouse, 0x04},
	{"MOUSE_WHEEL_DOWN", PageMouse, 0x05},

	{"MEDIA_SCREENSHOT", PageMedia, 0x16},
	{"MEDIA_SHOW_KEYBOARD", PageMedia, 0x19},
	{"MEDIA_SHOW_DESKTOP", PageMedia, 0x1c},
	{"MEDIA_START_RECORDING", PageMedia, 0x1e},
	{"MEDIA_MIC_OFF", PageMedia, 0x01},
	{"MEDIA_VOL_DOWN", PageMedia, 0x02},
	{"MEDIA_VOL_UP", PageMedia, 0x03},
}

type pageCode struct {
	page Page
	code byte
}

var (
	symbolsByName = make(map[string]pageCode, len(symbols))
	namesByCode   = make(map[pageCode]string, len(symbols))
)

func init() {
	for _, s := range symbols {
		symbolsByName[s.name] = pageCode{s.page, s.code}
		key := pageCode{s.page, s.code}
		if _, ok := namesByCode[key]; !ok {
			namesByCode[key] = s.name
		}
	}
}

// ResolveSymbol maps a canonical button name such as "KB_W" to its
// code page and code.
func ResolveSymbol(name string) (Page, byte, error) {
	pc, ok := symbolsByName[name]
	if !ok {
		return 0, 0, &Error{Kind: KindUnknownSymbol, Op: "resolve symbol " + name}
	}
	return pc.page, pc.code, nil
}

// SymbolName returns the canonical name of a page-qualified code. When
// firmware reuses a code within a page, the earliest table entry wins.
func SymbolName(page Page, code byte) (string, bool) {
	name, ok := namesByCode[pageCode{page, code}]
	return name, ok
}

// SymbolNames lists the canonical names of one page in table order.
func SymbolNames(page Page) []string {
	var out []string
	for _, s := range symbols {
		if s.page == page {
			out = append(out, s.name)
		}
	}
	return out
}

// SymbolPages lists the code pages in wire order.
func SymbolPages() []Page {
	return []Page{PageGamepad, PageKeyboard, PageMouse, PageMedia}
}

// IsClearSymbol reports whether s is one of the sentinel values that
// unbind a button: the empty string, a single space, or a newline.
func IsClearSymbol(s string) bool {
	return s == "" || s == " " || s == "\n"
}

// NormalizeSymbol converts the space-separated form used by the
// attribute surface ("KB W", "NUMPAD 0") into a canonical name. Input
// that is already canonical passes through unchanged.
func NormalizeSymbol(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, "_")
}

// DisplaySymbol renders a canonical name in the space-separated form,
// splitting the page prefix off at the first underscore.
func DisplaySymbol(name string) string {
	if name == "" {
		return ""
	}
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[:i] + " " + name[i+1:]
	}
	return name
}
