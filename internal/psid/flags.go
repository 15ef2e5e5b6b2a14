package psid

import "github.com/simonhull/hvscmeta/internal/types"

// Clock is the video standard a tune was written for.
type Clock int

const (
	ClockUnknown Clock = iota
	ClockPAL
	ClockNTSC
	ClockAny
)

func (c Clock) String() string {
	switch c {
	case ClockPAL:
		return "PAL"
	case ClockNTSC:
		return "NTSC"
	case ClockAny:
		return "PAL/NTSC"
	default:
		return "unknown"
	}
}

// Model is the SID chip revision a tune was written for.
type Model int

const (
	ModelUnknown Model = iota
	Model6581
	Model8580
	ModelAny
)

func (m Model) String() string {
	switch m {
	case Model6581:
		return "6581"
	case Model8580:
		return "8580"
	case ModelAny:
		return "6581/8580"
	default:
		return "unknown"
	}
}

// Speed is the playback timing of a song.
type Speed int

const (
	// SpeedVBI calls the play routine once per video frame.
	SpeedVBI Speed = iota
	// SpeedCIA uses the CIA timer, 60Hz unless the tune reprograms it.
	SpeedCIA
)

func (s Speed) String() string {
	if s == SpeedCIA {
		return "CIA"
	}
	return "VBI"
}

// Flag bits of the v2+ header.
const (
	flagMUSPlayer   = 1 << 0
	flagPSIDSpecial = 1 << 1 // PlaySID specific (PSID), C64 BASIC (RSID)
	clockShift      = 2
	modelShift      = 4
	model2Shift     = 6
	model3Shift     = 8
)

func (f *File) flags() uint16 {
	if f.Header.Extended == nil {
		return 0
	}
	return f.Header.Extended.Flags
}

// MUSPlayer reports whether the data is Compute!'s Sidplayer MUS data.
func (f *File) MUSPlayer() bool {
	return f.flags()&flagMUSPlayer != 0
}

// PlaySIDSpecific reports whether a PSID file relies on PlaySID samples.
// It is always false for RSID files.
func (f *File) PlaySIDSpecific() bool {
	return f.Header.Format == types.FormatPSID && f.flags()&flagPSIDSpecial != 0
}

// BasicFlag reports whether an RSID file contains a C64 BASIC program.
// It is always false for PSID files.
func (f *File) BasicFlag() bool {
	return f.Header.Format == types.FormatRSID && f.flags()&flagPSIDSpecial != 0
}

// Clock returns the video standard of the tune.
func (f *File) Clock() Clock {
	return Clock((f.flags() >> clockShift) & 0x03)
}

// SIDModel returns the model of SID chip n (1-3). A second or third chip
// whose model is not given uses the model of the first.
func (f *File) SIDModel(n int) Model {
	flags := f.flags()
	first := Model((flags >> modelShift) & 0x03)

	var shift uint
	switch n {
	case 1:
		return first
	case 2:
		shift = model2Shift
	case 3:
		shift = model3Shift
	default:
		return ModelUnknown
	}
	if f.SIDAddress(n) == 0 {
		return ModelUnknown
	}
	if m := Model((flags >> shift) & 0x03); m != ModelUnknown {
		return m
	}
	return first
}

// SpeedFor returns the timing of song (1-based). Bit n-1 of the speed field
// covers song n; songs past 32 share bit 31. RSID tunes always use CIA
// timing.
func (f *File) SpeedFor(song int) Speed {
	if f.Header.Format == types.FormatRSID {
		return SpeedCIA
	}
	bit := min(max(song, 1), 32) - 1
	if f.Header.Speed&(1<<uint(bit)) != 0 {
		return SpeedCIA
	}
	return SpeedVBI
}
