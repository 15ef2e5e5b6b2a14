package types

import "fmt"

// Header is the decoded fixed-layout header of a PSID or RSID file.
//
// All multi-byte values are stored big-endian in the file. The three text
// fields are fixed 32-byte areas without a guaranteed terminator; they are
// decoded from ISO-8859-1 and cut at the first NUL byte.
type Header struct {
	// Extended holds the fields of version 2 and later headers.
	// It is nil for version 1 headers.
	Extended *ExtendedHeader

	Name     string
	Author   string
	Released string // "copyright" in older documentation

	Format      Format
	Speed       uint32
	Version     uint16
	DataOffset  uint16
	LoadAddress uint16
	InitAddress uint16
	PlayAddress uint16
	Songs       uint16
	StartSong   uint16
}

// ExtendedHeader holds the header fields added in version 2 of the format.
type ExtendedHeader struct {
	Flags      uint16
	StartPage  uint8
	PageLength uint8

	// SecondSID and ThirdSID hold the middle two nybbles of the extra SID
	// chip address ($42 means $D420), or 0 when there is no such chip.
	// Only validated addresses are stored.
	SecondSID uint8
	ThirdSID  uint8
}

// String returns a short description of the header.
// Example output: "PSID v2 \"Commando\" by Rob Hubbard (1985 Elite), 19 songs".
func (h *Header) String() string {
	return fmt.Sprintf("%s v%d %q by %s (%s), %d songs",
		h.Format, h.Version, h.Name, h.Author, h.Released, h.Songs)
}

// DurationRecord holds the song lengths of one SID file, in seconds, in tune
// order.
type DurationRecord struct {
	Key       string
	Durations []int
}
