package arduino

//go:generate go tool stringer -type=PinUse -output=pinuse_string.go

// PinUse is the usage category a physical pin is reserved under. Two
// claims on one pin are compatible only when they carry the same category.
type PinUse int

const (
	UseInput PinUse = iota
	UseOutput
	UsePWM
	UseServo
	UseSPI
	UseI2C
	UseSerial
)
