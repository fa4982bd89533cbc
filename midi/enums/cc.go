package enums

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/but80/midicc/midi/u7"
	"github.com/pkg/errors"
)

// ControlFunction is the function addressed by a control change controller number.
// Every value in 0..127 has exactly one constant.
type ControlFunction uint8

const (
	// Continuous controllers, MSB
	CC_BankSelect                ControlFunction = 0
	CC_ModulationWheel           ControlFunction = 1
	CC_BreathController          ControlFunction = 2
	CC_Undefined3                ControlFunction = 3
	CC_FootController            ControlFunction = 4
	CC_PortamentoTime            ControlFunction = 5
	CC_DataEntryMSB              ControlFunction = 6 // also see 38 and 96..101
	CC_ChannelVolume             ControlFunction = 7
	CC_Balance                   ControlFunction = 8
	CC_Undefined9                ControlFunction = 9
	CC_Pan                       ControlFunction = 10
	CC_ExpressionController      ControlFunction = 11
	CC_EffectControl1            ControlFunction = 12
	CC_EffectControl2            ControlFunction = 13
	CC_Undefined14               ControlFunction = 14
	CC_Undefined15               ControlFunction = 15
	CC_GeneralPurposeController1 ControlFunction = 16
	CC_GeneralPurposeController2 ControlFunction = 17
	CC_GeneralPurposeController3 ControlFunction = 18
	CC_GeneralPurposeController4 ControlFunction = 19
	CC_Undefined20               ControlFunction = 20
	CC_Undefined21               ControlFunction = 21
	CC_Undefined22               ControlFunction = 22
	CC_Undefined23               ControlFunction = 23
	CC_Undefined24               ControlFunction = 24
	CC_Undefined25               ControlFunction = 25
	CC_Undefined26               ControlFunction = 26
	CC_Undefined27               ControlFunction = 27
	CC_Undefined28               ControlFunction = 28
	CC_Undefined29               ControlFunction = 29
	CC_Undefined30               ControlFunction = 30
	CC_Undefined31               ControlFunction = 31

	// Continuous controllers, LSB
	CC_BankSelectLSB                ControlFunction = 32
	CC_ModulationWheelLSB           ControlFunction = 33
	CC_BreathControllerLSB          ControlFunction = 34
	CC_Undefined3LSB                ControlFunction = 35
	CC_FootControllerLSB            ControlFunction = 36
	CC_PortamentoTimeLSB            ControlFunction = 37
	CC_DataEntryLSB                 ControlFunction = 38
	CC_ChannelVolumeLSB             ControlFunction = 39
	CC_BalanceLSB                   ControlFunction = 40
	CC_Undefined9LSB                ControlFunction = 41
	CC_PanLSB                       ControlFunction = 42
	CC_ExpressionControllerLSB      ControlFunction = 43
	CC_EffectControl1LSB            ControlFunction = 44
	CC_EffectControl2LSB            ControlFunction = 45
	CC_Undefined14LSB               ControlFunction = 46
	CC_Undefined15LSB               ControlFunction = 47
	CC_GeneralPurposeController1LSB ControlFunction = 48
	CC_GeneralPurposeController2LSB ControlFunction = 49
	CC_GeneralPurposeController3LSB ControlFunction = 50
	CC_GeneralPurposeController4LSB ControlFunction = 51
	CC_Undefined20LSB               ControlFunction = 52
	CC_Undefined21LSB               ControlFunction = 53
	CC_Undefined22LSB               ControlFunction = 54
	CC_Undefined23LSB               ControlFunction = 55
	CC_Undefined24LSB               ControlFunction = 56
	CC_Undefined25LSB               ControlFunction = 57
	CC_Undefined26LSB               ControlFunction = 58
	CC_Undefined27LSB               ControlFunction = 59
	CC_Undefined28LSB               ControlFunction = 60
	CC_Undefined29LSB               ControlFunction = 61
	CC_Undefined30LSB               ControlFunction = 62
	CC_Undefined31LSB               ControlFunction = 63

	// Single-byte controllers
	CC_DamperPedal               ControlFunction = 64 // sustain
	CC_PortamentoOnOff           ControlFunction = 65
	CC_Sostenuto                 ControlFunction = 66
	CC_SoftPedal                 ControlFunction = 67
	CC_LegatoFootswitch          ControlFunction = 68 // 0..63 normal, 64..127 legato
	CC_Hold2                     ControlFunction = 69 // hold 1 is 64
	CC_SoundController1          ControlFunction = 70 // sound variation
	CC_SoundController2          ControlFunction = 71 // timbre/harmonic intensity
	CC_SoundController3          ControlFunction = 72 // release time
	CC_SoundController4          ControlFunction = 73 // attack time
	CC_SoundController5          ControlFunction = 74 // brightness
	CC_SoundController6          ControlFunction = 75
	CC_SoundController7          ControlFunction = 76
	CC_SoundController8          ControlFunction = 77
	CC_SoundController9          ControlFunction = 78
	CC_SoundController10         ControlFunction = 79
	CC_GeneralPurposeController5 ControlFunction = 80
	CC_GeneralPurposeController6 ControlFunction = 81
	CC_GeneralPurposeController7 ControlFunction = 82
	CC_GeneralPurposeController8 ControlFunction = 83
	CC_PortamentoControl         ControlFunction = 84
	CC_Undefined85               ControlFunction = 85
	CC_Undefined86               ControlFunction = 86
	CC_Undefined87               ControlFunction = 87
	CC_Undefined88               ControlFunction = 88
	CC_Undefined89               ControlFunction = 89
	CC_Undefined90               ControlFunction = 90
	CC_Effects1Depth             ControlFunction = 91 // formerly external effects depth
	CC_Effects2Depth             ControlFunction = 92 // formerly tremolo depth
	CC_Effects3Depth             ControlFunction = 93 // formerly chorus depth
	CC_Effects4Depth             ControlFunction = 94 // formerly celeste (detune) depth
	CC_Effects5Depth             ControlFunction = 95 // formerly phaser depth

	// Increment/decrement and parameter numbers
	CC_DataIncrement                   ControlFunction = 96
	CC_DataDecrement                   ControlFunction = 97
	CC_NonRegisteredParameterNumberLSB ControlFunction = 98
	CC_NonRegisteredParameterNumberMSB ControlFunction = 99
	CC_RegisteredParameterNumberLSB    ControlFunction = 100
	CC_RegisteredParameterNumberMSB    ControlFunction = 101

	// Reserved single-byte controllers
	CC_Undefined102 ControlFunction = 102
	CC_Undefined103 ControlFunction = 103
	CC_Undefined104 ControlFunction = 104
	CC_Undefined105 ControlFunction = 105
	CC_Undefined106 ControlFunction = 106
	CC_Undefined107 ControlFunction = 107
	CC_Undefined108 ControlFunction = 108
	CC_Undefined109 ControlFunction = 109
	CC_Undefined110 ControlFunction = 110
	CC_Undefined111 ControlFunction = 111
	CC_Undefined112 ControlFunction = 112
	CC_Undefined113 ControlFunction = 113
	CC_Undefined114 ControlFunction = 114
	CC_Undefined115 ControlFunction = 115
	CC_Undefined116 ControlFunction = 116
	CC_Undefined117 ControlFunction = 117
	CC_Undefined118 ControlFunction = 118
	CC_Undefined119 ControlFunction = 119

	// Channel mode messages. These address the whole instrument on its basic channel.
	CC_AllSoundOff         ControlFunction = 120
	CC_ResetAllControllers ControlFunction = 121
	CC_LocalControl        ControlFunction = 122 // 0 = off, 127 = on
	CC_AllNotesOff         ControlFunction = 123 // notes held by the damper pedal keep sounding
	CC_OmniModeOn          ControlFunction = 124
	CC_OmniModeOff         ControlFunction = 125
	CC_MonoOperation       ControlFunction = 126 // value is the number of channels, 0 = auto
	CC_PolyOperation       ControlFunction = 127
)

var ccNames = [128]string{
	CC_BankSelect:                      "BankSelect",
	CC_ModulationWheel:                 "ModulationWheel",
	CC_BreathController:                "BreathController",
	CC_Undefined3:                      "Undefined3",
	CC_FootController:                  "FootController",
	CC_PortamentoTime:                  "PortamentoTime",
	CC_DataEntryMSB:                    "DataEntryMSB",
	CC_ChannelVolume:                   "ChannelVolume",
	CC_Balance:                         "Balance",
	CC_Undefined9:                      "Undefined9",
	CC_Pan:                             "Pan",
	CC_ExpressionController:            "ExpressionController",
	CC_EffectControl1:                  "EffectControl1",
	CC_EffectControl2:                  "EffectControl2",
	CC_Undefined14:                     "Undefined14",
	CC_Undefined15:                     "Undefined15",
	CC_GeneralPurposeController1:       "GeneralPurposeController1",
	CC_GeneralPurposeController2:       "GeneralPurposeController2",
	CC_GeneralPurposeController3:       "GeneralPurposeController3",
	CC_GeneralPurposeController4:       "GeneralPurposeController4",
	CC_Undefined20:                     "Undefined20",
	CC_Undefined21:                     "Undefined21",
	CC_Undefined22:                     "Undefined22",
	CC_Undefined23:                     "Undefined23",
	CC_Undefined24:                     "Undefined24",
	CC_Undefined25:                     "Undefined25",
	CC_Undefined26:                     "Undefined26",
	CC_Undefined27:                     "Undefined27",
	CC_Undefined28:                     "Undefined28",
	CC_Undefined29:                     "Undefined29",
	CC_Undefined30:                     "Undefined30",
	CC_Undefined31:                     "Undefined31",
	CC_BankSelectLSB:                   "BankSelectLSB",
	CC_ModulationWheelLSB:              "ModulationWheelLSB",
	CC_BreathControllerLSB:             "BreathControllerLSB",
	CC_Undefined3LSB:                   "Undefined3LSB",
	CC_FootControllerLSB:               "FootControllerLSB",
	CC_PortamentoTimeLSB:               "PortamentoTimeLSB",
	CC_DataEntryLSB:                    "DataEntryLSB",
	CC_ChannelVolumeLSB:                "ChannelVolumeLSB",
	CC_BalanceLSB:                      "BalanceLSB",
	CC_Undefined9LSB:                   "Undefined9LSB",
	CC_PanLSB:                          "PanLSB",
	CC_ExpressionControllerLSB:         "ExpressionControllerLSB",
	CC_EffectControl1LSB:               "EffectControl1LSB",
	CC_EffectControl2LSB:               "EffectControl2LSB",
	CC_Undefined14LSB:                  "Undefined14LSB",
	CC_Undefined15LSB:                  "Undefined15LSB",
	CC_GeneralPurposeController1LSB:    "GeneralPurposeController1LSB",
	CC_GeneralPurposeController2LSB:    "GeneralPurposeController2LSB",
	CC_GeneralPurposeController3LSB:    "GeneralPurposeController3LSB",
	CC_GeneralPurposeController4LSB:    "GeneralPurposeController4LSB",
	CC_Undefined20LSB:                  "Undefined20LSB",
	CC_Undefined21LSB:                  "Undefined21LSB",
	CC_Undefined22LSB:                  "Undefined22LSB",
	CC_Undefined23LSB:                  "Undefined23LSB",
	CC_Undefined24LSB:                  "Undefined24LSB",
	CC_Undefined25LSB:                  "Undefined25LSB",
	CC_Undefined26LSB:                  "Undefined26LSB",
	CC_Undefined27LSB:                  "Undefined27LSB",
	CC_Undefined28LSB:                  "Undefined28LSB",
	CC_Undefined29LSB:                  "Undefined29LSB",
	CC_Undefined30LSB:                  "Undefined30LSB",
	CC_Undefined31LSB:                  "Undefined31LSB",
	CC_DamperPedal:                     "DamperPedal",
	CC_PortamentoOnOff:                 "PortamentoOnOff",
	CC_Sostenuto:                       "Sostenuto",
	CC_SoftPedal:                       "SoftPedal",
	CC_LegatoFootswitch:                "LegatoFootswitch",
	CC_Hold2:                           "Hold2",
	CC_SoundController1:                "SoundController1",
	CC_SoundController2:                "SoundController2",
	CC_SoundController3:                "SoundController3",
	CC_SoundController4:                "SoundController4",
	CC_SoundController5:                "SoundController5",
	CC_SoundController6:                "SoundController6",
	CC_SoundController7:                "SoundController7",
	CC_SoundController8:                "SoundController8",
	CC_SoundController9:                "SoundController9",
	CC_SoundController10:               "SoundController10",
	CC_GeneralPurposeController5:       "GeneralPurposeController5",
	CC_GeneralPurposeController6:       "GeneralPurposeController6",
	CC_GeneralPurposeController7:       "GeneralPurposeController7",
	CC_GeneralPurposeController8:       "GeneralPurposeController8",
	CC_PortamentoControl:               "PortamentoControl",
	CC_Undefined85:                     "Undefined85",
	CC_Undefined86:                     "Undefined86",
	CC_Undefined87:                     "Undefined87",
	CC_Undefined88:                     "Undefined88",
	CC_Undefined89:                     "Undefined89",
	CC_Undefined90:                     "Undefined90",
	CC_Effects1Depth:                   "Effects1Depth",
	CC_Effects2Depth:                   "Effects2Depth",
	CC_Effects3Depth:                   "Effects3Depth",
	CC_Effects4Depth:                   "Effects4Depth",
	CC_Effects5Depth:                   "Effects5Depth",
	CC_DataIncrement:                   "DataIncrement",
	CC_DataDecrement:                   "DataDecrement",
	CC_NonRegisteredParameterNumberLSB: "NonRegisteredParameterNumberLSB",
	CC_NonRegisteredParameterNumberMSB: "NonRegisteredParameterNumberMSB",
	CC_RegisteredParameterNumberLSB:    "RegisteredParameterNumberLSB",
	CC_RegisteredParameterNumberMSB:    "RegisteredParameterNumberMSB",
	CC_Undefined102:                    "Undefined102",
	CC_Undefined103:                    "Undefined103",
	CC_Undefined104:                    "Undefined104",
	CC_Undefined105:                    "Undefined105",
	CC_Undefined106:                    "Undefined106",
	CC_Undefined107:                    "Undefined107",
	CC_Undefined108:                    "Undefined108",
	CC_Undefined109:                    "Undefined109",
	CC_Undefined110:                    "Undefined110",
	CC_Undefined111:                    "Undefined111",
	CC_Undefined112:                    "Undefined112",
	CC_Undefined113:                    "Undefined113",
	CC_Undefined114:                    "Undefined114",
	CC_Undefined115:                    "Undefined115",
	CC_Undefined116:                    "Undefined116",
	CC_Undefined117:                    "Undefined117",
	CC_Undefined118:                    "Undefined118",
	CC_Undefined119:                    "Undefined119",
	CC_AllSoundOff:                     "AllSoundOff",
	CC_ResetAllControllers:             "ResetAllControllers",
	CC_LocalControl:                    "LocalControl",
	CC_AllNotesOff:                     "AllNotesOff",
	CC_OmniModeOn:                      "OmniModeOn",
	CC_OmniModeOff:                     "OmniModeOff",
	CC_MonoOperation:                   "MonoOperation",
	CC_PolyOperation:                   "PolyOperation",
}

var ccTable [128]ControlFunction
var ccByName map[string]ControlFunction

func init() {
	ccByName = make(map[string]ControlFunction, len(ccNames))
	for i, name := range ccNames {
		cc := ControlFunction(i)
		ccTable[i] = cc
		ccByName[strings.ToLower(name)] = cc
	}
}

// Decode returns the control function for a controller number.
func Decode(v u7.U7) ControlFunction {
	return ccTable[v.Uint8()]
}

// Encode returns the controller number of cc.
func Encode(cc ControlFunction) u7.U7 {
	return u7.FromUnchecked(uint8(cc))
}

func EncodeRaw(cc ControlFunction) uint8 {
	return uint8(cc)
}

// All returns every control function in numeric order.
func All() []ControlFunction {
	result := make([]ControlFunction, len(ccTable))
	copy(result, ccTable[:])
	return result
}

func (cc ControlFunction) Name() string {
	s := "unknown"
	if int(cc) < len(ccNames) {
		s = ccNames[cc]
	}
	return s
}

func (cc ControlFunction) String() string {
	return fmt.Sprintf("%s(%d)", cc.Name(), int(cc))
}

// IsUndefined reports whether cc is a reserved controller number.
func (cc ControlFunction) IsUndefined() bool {
	return strings.HasPrefix(cc.Name(), "Undefined")
}

// IsChannelMode reports whether cc is a channel mode message (120..127).
func (cc ControlFunction) IsChannelMode() bool {
	return CC_AllSoundOff <= cc && int(cc) < len(ccNames)
}

// LSB returns the LSB controller paired with an MSB controller (0..31).
func (cc ControlFunction) LSB() (ControlFunction, bool) {
	if CC_Undefined31 < cc {
		return 0, false
	}
	return cc + 32, true
}

// MSB returns the MSB controller paired with an LSB controller (32..63).
func (cc ControlFunction) MSB() (ControlFunction, bool) {
	if cc < CC_BankSelectLSB || CC_Undefined31LSB < cc {
		return 0, false
	}
	return cc - 32, true
}

func (cc ControlFunction) MarshalJSON() ([]byte, error) {
	return json.Marshal(cc.String())
}

func (cc *ControlFunction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.WithStack(err)
		}
		s = strconv.Itoa(n)
	}
	v, err := ParseControlFunction(s)
	if err != nil {
		return err
	}
	*cc = v
	return nil
}

var ccStringRe = regexp.MustCompile(`^(\w+)\((\d+)\)$`)

// ParseControlFunction accepts a name (case-insensitive, optional "CC_"
// prefix), a controller number, or the String form such as "ChannelVolume(7)".
func ParseControlFunction(s string) (ControlFunction, error) {
	s = strings.TrimSpace(s)
	if m := ccStringRe.FindStringSubmatch(s); m != nil {
		cc, err := ParseControlFunction(m[1])
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, errors.Wrapf(err, "Invalid controller number in %q", s)
		}
		if n != int(cc) {
			return 0, errors.Errorf("Control function number mismatch: %s is %d", cc.Name(), int(cc))
		}
		return cc, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		v, err := u7.New(n)
		if err != nil {
			return 0, errors.Wrap(err, "Invalid controller number")
		}
		return Decode(v), nil
	}
	name := strings.ToLower(s)
	name = strings.TrimPrefix(name, "cc_")
	cc, ok := ccByName[name]
	if !ok {
		return 0, errors.Errorf("Unknown control function: %q", s)
	}
	return cc, nil
}
