package ally

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Attr is one named configuration attribute. The attribute surface
// mirrors the per-knob text interface the controller is configured
// through: Read formats the stored value, Write parses and applies
// one. Read is nil on trigger-style attributes, Write on read-only
// ones.
type Attr struct {
	Name  string
	Read  func(d *Device) (string, error)
	Write func(d *Device, value string) error
}

// LookupAttr returns the named attribute.
func LookupAttr(name string) (Attr, bool) {
	a, ok := attrs[name]
	return a, ok
}

// AttrNames returns all attribute names, sorted.
func AttrNames() []string {
	names := maps.Keys(attrs)
	slices.Sort(names)
	return names
}

var attrs = buildAttrs()

func buildAttrs() map[string]Attr {
	m := make(map[string]Attr)
	add := func(a Attr) { m[a.Name] = a }

	add(Attr{
		Name: "mode",
		Read: func(d *Device) (string, error) {
			return strconv.Itoa(int(d.Mode())), nil
		},
		Write: func(d *Device, value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return Validationf("set mode", "bad mode %q", strings.TrimSpace(value))
			}
			return d.SetMode(Mode(n))
		},
	})

	for _, btn := range Buttons {
		add(Attr{
			Name: "btn_mapping_" + btn.Name,
			Read: func(d *Device) (string, error) {
				return d.ButtonName(btn, false), nil
			},
			Write: func(d *Device, value string) error {
				return d.SetButton(btn, false, value)
			},
		})
		add(Attr{
			Name: "btn_mapping_" + btn.Name + "_secondary",
			Read: func(d *Device) (string, error) {
				return d.ButtonName(btn, true), nil
			},
			Write: func(d *Device, value string) error {
				return d.SetButton(btn, true, value)
			},
		})
		add(Attr{
			Name: "turbo_" + btn.Name,
			Read: func(d *Device) (string, error) {
				return strconv.Itoa(int(d.Turbo(btn))), nil
			},
			Write: func(d *Device, value string) error {
				v, err := parseBytes("set turbo", value, 1)
				if err != nil {
					return err
				}
				return d.SetTurbo(btn, v[0])
			},
		})
	}

	add(Attr{
		Name: "btn_mapping_apply",
		Write: func(d *Device, _ string) error {
			_, err := d.Apply()
			return err
		},
	})
	add(Attr{
		Name: "btn_mapping_reset",
		Write: func(d *Device, _ string) error {
			d.ResetMappings()
			return nil
		},
	})

	for _, axis := range []Axis{AxisStickLeft, AxisStickRight, AxisTriggerLeft, AxisTriggerRight} {
		prefix := "tr"
		if axis.IsStick() {
			prefix = "js"
		}
		add(Attr{
			Name: fmt.Sprintf("%s_deadzone_%s", prefix, axis.Side()),
			Read: func(d *Device) (string, error) {
				inner, outer := d.Deadzone(axis)
				return fmt.Sprintf("%d %d", inner, outer), nil
			},
			Write: func(d *Device, value string) error {
				v, err := parseBytes("set deadzone", value, 2)
				if err != nil {
					return err
				}
				return d.SetDeadzone(axis, v[0], v[1])
			},
		})
		add(calibrationAttr(axis))
		add(Attr{
			Name: "calibration_reset_" + axis.String(),
			Write: func(d *Device, _ string) error {
				return d.ResetCalibration(axis)
			},
		})
	}

	for _, side := range []Side{SideLeft, SideRight} {
		add(Attr{
			Name: fmt.Sprintf("js_anti_deadzone_%s", side),
			Read: func(d *Device) (string, error) {
				return strconv.Itoa(int(d.AntiDeadzone(side))), nil
			},
			Write: func(d *Device, value string) error {
				v, err := parseBytes("set anti-deadzone", value, 1)
				if err != nil {
					return err
				}
				return d.SetAntiDeadzone(side, v[0])
			},
		})
		for point := 1; point <= 4; point++ {
			add(Attr{
				Name: fmt.Sprintf("rc_point_%s_%d", side, point),
				Read: func(d *Device) (string, error) {
					move, response := d.CurvePoint(side, point)
					return fmt.Sprintf("%d %d", move, response), nil
				},
				Write: func(d *Device, value string) error {
					v, err := parseBytes("set response curve", value, 2)
					if err != nil {
						return err
					}
					return d.SetCurvePoint(side, point, v[0], v[1])
				},
			})
		}
	}

	add(Attr{
		Name: "vibration_intensity",
		Read: func(d *Device) (string, error) {
			left, right := d.VibeIntensity()
			return fmt.Sprintf("%d %d", left, right), nil
		},
		Write: func(d *Device, value string) error {
			v, err := parseBytes("set vibration intensity", value, 2)
			if err != nil {
				return err
			}
			return d.SetVibeIntensity(v[0], v[1])
		},
	})

	return m
}

func calibrationAttr(axis Axis) Attr {
	if axis.IsStick() {
		return Attr{
			Name: "calibration_" + axis.String(),
			Read: func(d *Device) (string, error) {
				xs, xmin, xmax, ys, ymin, ymax := d.StickCalibration(axis)
				return fmt.Sprintf("%d %d %d %d %d %d", xs, xmin, xmax, ys, ymin, ymax), nil
			},
			Write: func(d *Device, value string) error {
				v, err := parseInt16s("set calibration", value, 6)
				if err != nil {
					return err
				}
				return d.Calibrate(axis, v)
			},
		}
	}
	return Attr{
		Name: "calibration_" + axis.String(),
		Read: func(d *Device) (string, error) {
			stable, max := d.TriggerCalibration(axis)
			return fmt.Sprintf("%d %d", stable, max), nil
		},
		Write: func(d *Device, value string) error {
			v, err := parseInt16s("set calibration", value, 2)
			if err != nil {
				return err
			}
			return d.Calibrate(axis, v)
		},
	}
}

// parseBytes parses exactly n whitespace-separated byte-range integers.
// Range checks beyond 0-255 belong to the store setters.
func parseBytes(op, value string, n int) ([]byte, error) {
	fields := strings.Fields(value)
	if len(fields) != n {
		return nil, Validationf(op, "want %d values, got %d", n, len(fields))
	}
	out := make([]byte, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > math.MaxUint8 {
			return nil, Validationf(op, "bad value %q", f)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// parseInt16s parses exactly n whitespace-separated signed 16-bit
// integers.
func parseInt16s(op, value string, n int) ([]int16, error) {
	fields := strings.Fields(value)
	if len(fields) != n {
		return nil, Validationf(op, "want %d values, got %d", n, len(fields))
	}
	out := make([]int16, n)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 16)
		if err != nil {
			return nil, Validationf(op, "bad value %q", f)
		}
		out[i] = int16(v)
	}
	return out, nil
}
