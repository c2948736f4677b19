package ally_test

import (
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAttr(t *testing.T, name string) ally.Attr {
	t.Helper()
	attr, ok := ally.LookupAttr(name)
	require.True(t, ok, name)
	return attr
}

func TestAttrNames(t *testing.T) {
	names := ally.AttrNames()

	// 36 mapping + 18 turbo + 4 deadzone + 4 calibration + 4
	// calibration resets + 8 curve points + 2 anti-deadzone + mode,
	// vibration, apply, reset.
	assert.Len(t, names, 80)
	assert.IsIncreasing(t, names)

	for _, name := range []string{
		"mode",
		"btn_mapping_a",
		"btn_mapping_dpad_u_secondary",
		"btn_mapping_apply",
		"btn_mapping_reset",
		"js_deadzone_left",
		"tr_deadzone_right",
		"js_anti_deadzone_right",
		"vibration_intensity",
		"rc_point_left_1",
		"rc_point_right_4",
		"turbo_m1",
		"calibration_js_left",
		"calibration_reset_tr_right",
	} {
		_, ok := ally.LookupAttr(name)
		assert.True(t, ok, name)
	}

	_, ok := ally.LookupAttr("bogus")
	assert.False(t, ok)
}

func TestAttrAccessShape(t *testing.T) {
	writeOnly := map[string]bool{
		"btn_mapping_apply":          true,
		"btn_mapping_reset":          true,
		"calibration_reset_js_left":  true,
		"calibration_reset_js_right": true,
		"calibration_reset_tr_left":  true,
		"calibration_reset_tr_right": true,
	}
	for _, name := range ally.AttrNames() {
		attr := mustAttr(t, name)
		assert.NotNil(t, attr.Write, name)
		if writeOnly[name] {
			assert.Nil(t, attr.Read, name)
		} else {
			assert.NotNil(t, attr.Read, name)
		}
	}
}

func TestAttrModeRoundTrip(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	attr := mustAttr(t, "mode")

	require.NoError(t, attr.Write(d, "2\n"))
	assert.Len(t, m.Sent(), 19, "mode write pushes the profile")

	v, err := attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	assert.True(t, ally.IsKind(attr.Write(d, "4"), ally.KindValidation))
	assert.True(t, ally.IsKind(attr.Write(d, "game"), ally.KindValidation))
}

func TestAttrMappingRoundTrip(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	attr := mustAttr(t, "btn_mapping_a")

	require.NoError(t, attr.Write(d, "KB W"))
	v, err := attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "KB W", v)
	assert.Empty(t, m.Sent(), "mapping writes stay in the store")

	require.NoError(t, attr.Write(d, "\n"))
	v, err = attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestAttrVibrationRejectKeepsPrevious(t *testing.T) {
	d, _ := newTestDevice(t, ally.Config{})
	attr := mustAttr(t, "vibration_intensity")

	require.NoError(t, attr.Write(d, "20 30"))
	err := attr.Write(d, "70 10")
	assert.True(t, ally.IsKind(err, ally.KindValidation))

	v, readErr := attr.Read(d)
	require.NoError(t, readErr)
	assert.Equal(t, "20 30", v)
}

func TestAttrApplyAndReset(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	mapping := mustAttr(t, "btn_mapping_a")
	require.NoError(t, mapping.Write(d, "KB W"))

	require.NoError(t, mustAttr(t, "btn_mapping_apply").Write(d, "1"))
	assert.Len(t, m.Sent(), 17)

	require.NoError(t, mustAttr(t, "btn_mapping_reset").Write(d, "1"))
	v, err := mapping.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "PAD A", v)
	assert.Len(t, m.Sent(), 17, "reset does not push")
}

func TestAttrDeadzoneParse(t *testing.T) {
	d, _ := newTestDevice(t, ally.Config{})
	attr := mustAttr(t, "js_deadzone_left")

	require.NoError(t, attr.Write(d, "10 50"))
	v, err := attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "10 50", v)

	for _, bad := range []string{"10", "a b", "10 50 60", "-1 50", "300 400"} {
		assert.True(t, ally.IsKind(attr.Write(d, bad), ally.KindValidation), bad)
	}
}

func TestAttrCalibrationRoundTrip(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	attr := mustAttr(t, "calibration_js_left")

	require.NoError(t, attr.Write(d, "100 50 900 110 60 950"))
	assert.Len(t, m.Sent(), 3, "calibration writes push immediately")

	v, err := attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "100 50 900 110 60 950", v)

	require.NoError(t, mustAttr(t, "calibration_reset_js_left").Write(d, "1"))
	v, err = attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 0 0 0", v)
}

func TestAttrTurbo(t *testing.T) {
	d, _ := newTestDevice(t, ally.Config{})

	attr := mustAttr(t, "turbo_a")
	require.NoError(t, attr.Write(d, "8"))
	v, err := attr.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "8", v)

	lt := mustAttr(t, "turbo_lt")
	assert.True(t, ally.IsKind(lt.Write(d, "1"), ally.KindValidation))
	v, err = lt.Read(d)
	require.NoError(t, err)
	assert.Equal(t, "0", v, "triggers always read zero turbo")
}
