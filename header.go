package hvscmeta

import (
	"github.com/simonhull/hvscmeta/internal/psid"
	"github.com/simonhull/hvscmeta/internal/types"
)

// Header is an alias to types.Header.
type Header = types.Header

// ExtendedHeader is an alias to types.ExtendedHeader.
type ExtendedHeader = types.ExtendedHeader

// Clock is an alias to psid.Clock.
type Clock = psid.Clock

// Re-export clock values.
const (
	ClockUnknown = psid.ClockUnknown
	ClockPAL     = psid.ClockPAL
	ClockNTSC    = psid.ClockNTSC
	ClockAny     = psid.ClockAny
)

// Model is an alias to psid.Model.
type Model = psid.Model

// Re-export SID model values.
const (
	ModelUnknown = psid.ModelUnknown
	Model6581    = psid.Model6581
	Model8580    = psid.Model8580
	ModelAny     = psid.ModelAny
)

// Speed is an alias to psid.Speed.
type Speed = psid.Speed

// Re-export speed values.
const (
	SpeedVBI = psid.SpeedVBI
	SpeedCIA = psid.SpeedCIA
)

// Header sizes.
const (
	MinHeaderSize      = psid.MinHeaderSize
	ExtendedHeaderSize = psid.ExtendedHeaderSize
)
