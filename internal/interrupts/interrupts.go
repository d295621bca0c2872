// Package interrupts provides the interrupt enable/request bookkeeping
// shared by the CPU and the hardware that raises interrupts.
package interrupts

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0), requested
	// every time the picture unit enters the vertical blanking
	// period.
	VBlankFlag uint8 = 1 << iota
	// LCDFlag is the LCD status interrupt flag (bit 1).
	LCDFlag
	// TimerFlag is the timer interrupt flag (bit 2), requested when
	// the timer counter overflows.
	TimerFlag
	// SerialFlag is the serial interrupt flag (bit 3), requested when
	// a serial transfer completes.
	SerialFlag
	// JoypadFlag is the joypad interrupt flag (bit 4), requested on a
	// high-to-low transition of a selected joypad line.
	JoypadFlag
)

// flagMask covers the five meaningful bits of the IE and IF registers.
const flagMask = 0x1F

// Service is the interrupt service, used to request interrupts and to
// resolve the vector of the next interrupt to be handled.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When an interrupt is enabled, the corresponding bit
// in the Enable register is set. An interrupt is serviced only when
// its bit is set in both registers and the master enable (IME) is set;
// servicing clears the Flag bit and the IME.
type Service struct {
	Flag   uint8 // interrupt request register (0xFF0F)
	Enable uint8 // interrupt enable register (0xFFFF)

	// IME is the master interrupt enable flag. It gates the servicing
	// of interrupts, but not the waking of a halted CPU.
	IME bool
}

// NewService returns a new Service with no interrupts enabled,
// requested or allowed.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if any interrupt is both requested and
// enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&flagMask != 0
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the service address of the highest-priority
// interrupt that is both requested and enabled, clearing its bit in
// the Flag register, or 0 if there is none. Priority runs from bit 0
// (VBlank) to bit 4 (Joypad).
func (s *Service) Vector() uint16 {
	active := s.Enable & s.Flag & flagMask
	if active == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1) << i
		if active&flag != 0 {
			s.Flag &^= flag
			return uint16(0x0040 + i*8)
		}
	}
	return 0
}

// ReadFlag returns the value of the interrupt request register. The
// upper three bits are unimplemented and always read as set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | ^uint8(flagMask)
}

// WriteFlag sets the interrupt request register. Only the five
// meaningful bits are stored.
func (s *Service) WriteFlag(value uint8) {
	s.Flag = value & flagMask
}

// ReadEnable returns the value of the interrupt enable register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable sets the interrupt enable register.
func (s *Service) WriteEnable(value uint8) {
	s.Enable = value
}
