package backlight

import (
	"image/color"
	"testing"

	"gotest.tools/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name                                string
		value, inMin, inMax, outMin, outMax int
		want                                int
	}{
		{"low end", 0, 0, 255, 128, 157, 128},
		{"high end", 255, 0, 255, 128, 157, 157},
		{"midpoint truncates", 128, 0, 255, 0, 29, 14},
		{"identity", 42, 0, 255, 0, 255, 42},
		{"offset input", 15, 10, 20, 0, 100, 50},
		{"inverted output", 0, 0, 10, 100, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.value, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if got != tt.want {
				t.Errorf("Map(%d, %d, %d, %d, %d) = %d, want %d",
					tt.value, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

func TestMapMonotonic(t *testing.T) {
	for _, b := range []Band{Red, Green, Blue} {
		prev := Map(0, 0, 255, int(b.Min), int(b.Max))
		for v := 1; v <= 255; v++ {
			got := Map(v, 0, 255, int(b.Min), int(b.Max))
			if got < prev {
				t.Fatalf("Map(%d) = %d after Map(%d) = %d in band %v", v, got, v-1, prev, b)
			}
			prev = got
		}
	}
}

func TestMapEmptyRangePanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.Equal(t, r, "backlight: empty input range")
	}()
	Map(10, 5, 5, 0, 29)
	t.Error("Map with an empty input range should panic")
}

func TestBandLevel(t *testing.T) {
	tests := []struct {
		name string
		band Band
		v    uint8
		want byte
	}{
		{"red off", Red, 0, 128},
		{"red full", Red, 255, 157},
		{"green off", Green, 0, 158},
		{"green full", Green, 255, 187},
		{"green half", Green, 128, 172},
		{"blue off", Blue, 0, 188},
		{"blue full", Blue, 255, 217},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.band.Level(tt.v), tt.want)
		})
	}
}

func TestColorLevels(t *testing.T) {
	r, g, b := Color{R: 255, G: 128, B: 0}.Levels()
	assert.Equal(t, r, byte(157))
	assert.Equal(t, g, byte(172))
	assert.Equal(t, b, byte(188))
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 0xFF, G: 0x80, B: 0x00}.RGBA()
	if r != 0xFFFF || g != 0x8080 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA() = (%x, %x, %x, %x), want (ffff, 8080, 0, ffff)", r, g, b, a)
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color{R: 1, G: 2, B: 3}, Color{R: 1, G: 2, B: 3}},
		{"black", color.Black, Color{}},
		{"white", color.White, Color{R: 255, G: 255, B: 255}},
		{"rgba", color.RGBA{0x12, 0x34, 0x56, 0xFF}, Color{R: 0x12, G: 0x34, B: 0x56}},
		{"gray16", color.Gray16{Y: 0x8000}, Color{R: 0x80, G: 0x80, B: 0x80}},
		{"transparent", color.Transparent, Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			assert.Equal(t, got, tt.want)
		})
	}
}
