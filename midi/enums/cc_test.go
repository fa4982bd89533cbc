package enums

import (
	"encoding/json"
	"testing"

	"github.com/but80/midicc/midi/u7"
	"gitlab.com/gomidi/midi/v2"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for v := 0; v <= u7.Max; v++ {
		in := u7.FromUnchecked(uint8(v))
		cc := Decode(in)
		if got := Encode(cc); got != in {
			t.Errorf("Encode(Decode(%d)) = %s", v, got)
		}
		if got := EncodeRaw(cc); int(got) != v {
			t.Errorf("EncodeRaw(Decode(%d)) = %d", v, got)
		}
	}
}

func TestAllInverse(t *testing.T) {
	all := All()
	if len(all) != 128 {
		t.Fatalf("len(All()) = %d, want 128", len(all))
	}
	seen := map[uint8]ControlFunction{}
	for i, cc := range all {
		if int(cc) != i {
			t.Errorf("All()[%d] = %s", i, cc)
		}
		if got := Decode(Encode(cc)); got != cc {
			t.Errorf("Decode(Encode(%s)) = %s", cc, got)
		}
		raw := EncodeRaw(cc)
		if 127 < raw {
			t.Errorf("EncodeRaw(%s) = %d, out of range", cc, raw)
		}
		if prev, ok := seen[raw]; ok {
			t.Errorf("%s and %s share number %d", prev, cc, raw)
		}
		seen[raw] = cc
	}
}

func TestTable(t *testing.T) {
	cases := []struct {
		num  uint8
		want ControlFunction
		name string
	}{
		{0, CC_BankSelect, "BankSelect"},
		{1, CC_ModulationWheel, "ModulationWheel"},
		{6, CC_DataEntryMSB, "DataEntryMSB"},
		{7, CC_ChannelVolume, "ChannelVolume"},
		{10, CC_Pan, "Pan"},
		{38, CC_DataEntryLSB, "DataEntryLSB"},
		{64, CC_DamperPedal, "DamperPedal"},
		{84, CC_PortamentoControl, "PortamentoControl"},
		{91, CC_Effects1Depth, "Effects1Depth"},
		{96, CC_DataIncrement, "DataIncrement"},
		{98, CC_NonRegisteredParameterNumberLSB, "NonRegisteredParameterNumberLSB"},
		{100, CC_RegisteredParameterNumberLSB, "RegisteredParameterNumberLSB"},
		{101, CC_RegisteredParameterNumberMSB, "RegisteredParameterNumberMSB"},
		{119, CC_Undefined119, "Undefined119"},
		{120, CC_AllSoundOff, "AllSoundOff"},
		{123, CC_AllNotesOff, "AllNotesOff"},
		{127, CC_PolyOperation, "PolyOperation"},
	}
	for _, c := range cases {
		got := Decode(u7.FromUnchecked(c.num))
		if got != c.want {
			t.Errorf("Decode(%d) = %s, want %s", c.num, got, c.want)
		}
		if got.Name() != c.name {
			t.Errorf("Decode(%d).Name() = %q, want %q", c.num, got.Name(), c.name)
		}
	}
	if got := Encode(CC_ModulationWheel); got.Int() != 1 {
		t.Errorf("Encode(ModulationWheel) = %s, want 1", got)
	}
	if got := Encode(CC_AllNotesOff); got.Int() != 123 {
		t.Errorf("Encode(AllNotesOff) = %s, want 123", got)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cc := range All() {
		name := cc.Name()
		if name == "" {
			t.Errorf("%d has no name", int(cc))
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

func TestString(t *testing.T) {
	if s := CC_ChannelVolume.String(); s != "ChannelVolume(7)" {
		t.Errorf("String() = %q", s)
	}
}

func TestUndefined(t *testing.T) {
	undefined := 0
	for _, cc := range All() {
		if cc.IsUndefined() {
			undefined++
		}
	}
	// 3, 9, 14, 15, 20..31 and their LSBs, 85..90, 102..119
	if want := 16*2 + 6 + 18; undefined != want {
		t.Errorf("undefined count = %d, want %d", undefined, want)
	}
	if CC_Undefined3 == CC_Undefined9 {
		t.Error("reserved slots must stay distinct")
	}
	if CC_Pan.IsUndefined() {
		t.Error("Pan is not undefined")
	}
}

func TestChannelMode(t *testing.T) {
	for _, cc := range All() {
		want := 120 <= int(cc)
		if cc.IsChannelMode() != want {
			t.Errorf("%s.IsChannelMode() = %v", cc, !want)
		}
	}
}

func TestMSBLSBPairs(t *testing.T) {
	for _, cc := range All() {
		lsb, ok := cc.LSB()
		if ok != (cc < 32) {
			t.Errorf("%s.LSB() ok = %v", cc, ok)
		}
		if ok {
			msb, ok := lsb.MSB()
			if !ok || msb != cc {
				t.Errorf("%s.LSB().MSB() = %s, %v", cc, msb, ok)
			}
		}
		if _, ok := cc.MSB(); ok != (32 <= cc && cc < 64) {
			t.Errorf("%s.MSB() ok = %v", cc, ok)
		}
	}
	if lsb, _ := CC_DataEntryMSB.LSB(); lsb != CC_DataEntryLSB {
		t.Errorf("DataEntryMSB.LSB() = %s", lsb)
	}
	if lsb, _ := CC_BankSelect.LSB(); lsb != CC_BankSelectLSB {
		t.Errorf("BankSelect.LSB() = %s", lsb)
	}
}

func TestParseControlFunction(t *testing.T) {
	cases := []struct {
		in   string
		want ControlFunction
	}{
		{"ChannelVolume", CC_ChannelVolume},
		{"channelvolume", CC_ChannelVolume},
		{"CC_Sostenuto", CC_Sostenuto},
		{" 64 ", CC_DamperPedal},
		{"0", CC_BankSelect},
		{"127", CC_PolyOperation},
		{"Undefined3LSB", CC_Undefined3LSB},
		{"AllNotesOff(123)", CC_AllNotesOff},
		{"Pan(010)", CC_Pan},
	}
	for _, c := range cases {
		got, err := ParseControlFunction(c.in)
		if err != nil {
			t.Errorf("ParseControlFunction(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseControlFunction(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	for _, in := range []string{"", "Sustain", "128", "-1", "AllNotesOff(120)"} {
		if got, err := ParseControlFunction(in); err == nil {
			t.Errorf("ParseControlFunction(%q) = %s, want error", in, got)
		}
	}
	for _, cc := range All() {
		got, err := ParseControlFunction(cc.Name())
		if err != nil || got != cc {
			t.Errorf("ParseControlFunction(%q) = %s, %v", cc.Name(), got, err)
		}
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(CC_Pan)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Pan(10)"` {
		t.Errorf("json.Marshal(Pan) = %s", b)
	}
	var v struct {
		A, B, C ControlFunction
	}
	err = json.Unmarshal([]byte(`{"A":"Pan(10)","B":"Hold2","C":121}`), &v)
	if err != nil {
		t.Fatal(err)
	}
	if v.A != CC_Pan || v.B != CC_Hold2 || v.C != CC_ResetAllControllers {
		t.Errorf("json.Unmarshal = %+v", v)
	}
	if err := json.Unmarshal([]byte(`200`), &v.A); err == nil {
		t.Error("json.Unmarshal(200) should fail")
	}
}

func TestControlChangeMessage(t *testing.T) {
	for _, cc := range All() {
		msg := midi.ControlChange(3, EncodeRaw(cc), 64)
		var ch, controller, value uint8
		if !msg.GetControlChange(&ch, &controller, &value) {
			t.Fatalf("%s: not a control change message: %v", cc, msg)
		}
		v, err := u7.New(int(controller))
		if err != nil {
			t.Fatalf("%s: %v", cc, err)
		}
		if got := Decode(v); got != cc {
			t.Errorf("controller %d decoded as %s, want %s", controller, got, cc)
		}
	}
}

func TestDecodeUncheckedBytes(t *testing.T) {
	for b := 0; b <= 255; b++ {
		cc := Decode(u7.FromUnchecked(uint8(b)))
		if 127 < EncodeRaw(cc) {
			t.Errorf("Decode(FromUnchecked(%d)) = %d, out of range", b, EncodeRaw(cc))
		}
	}
}

func TestNameOutOfTable(t *testing.T) {
	cc := ControlFunction(200)
	if cc.Name() != "unknown" {
		t.Errorf("Name() = %q, want unknown", cc.Name())
	}
	if s := cc.String(); s != "unknown(200)" {
		t.Errorf("String() = %q", s)
	}
	if cc.IsChannelMode() || cc.IsUndefined() {
		t.Errorf("%s should be neither channel mode nor undefined", cc)
	}
}
