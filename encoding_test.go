package hexcolor

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalJSON(t *testing.T) {
	const data = `{
		"foreground": "#FFFFFF",
		"background": "000",
		"overlay": "#00000080"
	}`
	var got struct {
		Foreground, Background, Overlay Color
	}
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatal(err)
	}
	if want := RGB(255, 255, 255); got.Foreground != want {
		t.Errorf("foreground = %v, want %v", got.Foreground, want)
	}
	if want := RGB(0, 0, 0); got.Background != want {
		t.Errorf("background = %v, want %v", got.Background, want)
	}
	if want := RGBA(0, 0, 0, 0x80); got.Overlay != want {
		t.Errorf("overlay = %v, want %v", got.Overlay, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Color{"c": RGBA(0x89, 0x50, 0xBE, 0x7F)})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"c":"#8950BE7F"}`; string(b) != want {
		t.Errorf("json.Marshal = %s, want %s", b, want)
	}
}

func TestUnmarshalBadColor(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte(`"#GHIJKL"`), &c); err == nil {
		t.Errorf(`unmarshaling "#GHIJKL" succeeded as %v; want error`, c)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(0, 0, 0), RGB(0xAB, 0xCD, 0xEF), RGBA(1, 2, 3, 4)} {
		b, err := json.Marshal(c)
		if err != nil {
			t.Fatal(err)
		}
		var got Color
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("round trip through %s = %v, want %v", b, got, c)
		}
	}
}
