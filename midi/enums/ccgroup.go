package enums

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type CCGroup int

const (
	CCGroup_MSB CCGroup = iota
	CCGroup_LSB
	CCGroup_SingleByte
	CCGroup_Undefined
	CCGroup_ChannelMode
)

var ccGroupNames = []string{
	"MSB",
	"LSB",
	"SingleByte",
	"Undefined",
	"ChannelMode",
}

func (g CCGroup) String() string {
	s := "unknown"
	if 0 <= g && int(g) < len(ccGroupNames) {
		s = ccGroupNames[g]
	}
	return fmt.Sprintf("%s(0x%02X)", s, int(g))
}

func (g CCGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g CCGroup) Contains(cc ControlFunction) bool {
	return cc.Group() == g
}

// Group classifies cc by its number range.
// Reserved numbers 85..90 fall in CCGroup_SingleByte.
func (cc ControlFunction) Group() CCGroup {
	switch {
	case cc <= CC_Undefined31:
		return CCGroup_MSB
	case cc <= CC_Undefined31LSB:
		return CCGroup_LSB
	case cc <= CC_RegisteredParameterNumberMSB:
		return CCGroup_SingleByte
	case cc <= CC_Undefined119:
		return CCGroup_Undefined
	}
	return CCGroup_ChannelMode
}

var ccGroupAliases = map[string]CCGroup{
	"msb":         CCGroup_MSB,
	"lsb":         CCGroup_LSB,
	"single":      CCGroup_SingleByte,
	"singlebyte":  CCGroup_SingleByte,
	"undefined":   CCGroup_Undefined,
	"mode":        CCGroup_ChannelMode,
	"channelmode": CCGroup_ChannelMode,
}

func ParseCCGroup(s string) (CCGroup, error) {
	g, ok := ccGroupAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Errorf("Unknown control function group: %q", s)
	}
	return g, nil
}
