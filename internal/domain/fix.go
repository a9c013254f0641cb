package domain

// Fix is one WGS 84 position reported by a GNSS receiver.
type Fix struct {
	Sentence   string // NMEA sentence type the fix came from, e.g. "RMC"
	Time       string // receiver UTC time, e.g. "12:35:19.0000"
	Position   Geographic
	Satellites int64
}

// FixReport is a receiver fix converted into the Minna system.
type FixReport struct {
	Fix   Fix
	Minna GeographicResult
	Grid  GridResult
}
