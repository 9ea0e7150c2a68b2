package protocol

// Encode builds the payload for a climate state.
//
// An out-of-range temperature falls back to DefaultTemperature and an unknown
// fan speed falls back to FanAuto. A powered-on state must carry one of the
// operating modes in Modes, otherwise ErrUnsupportedMode is returned. A
// powered-off state still packs its mode code (Cool when the mode is ModeOff
// or unknown), matching what the stock remote sends when switching off.
func Encode(state ClimateState) (Payload, error) {
	p := template

	modeCode, known := modeCodes[state.Mode]
	if state.Power {
		if !known {
			return Payload{}, newError(KindUnsupportedMode, IndexModeTemp, int(state.Mode), -1,
				"mode %s cannot be sent while powered on", state.Mode)
		}
		p[IndexPower] = PowerOn
	} else {
		if !known {
			modeCode = ModeCodeCool
		}
		p[IndexPower] = PowerOff
	}

	temperature := state.Temperature
	if temperature < TempMin || temperature > TempMax {
		temperature = DefaultTemperature
	}
	p[IndexModeTemp] = byte(temperature-TempOffset)<<4 | modeCode

	fanCode, ok := fanCodes[state.Fan]
	if !ok {
		fanCode = FanCodeAuto
	}
	p[IndexFan] = fanCode

	p.seal()
	return p, nil
}

// Decode validates a received payload and extracts the climate state.
//
// The checks run in order: length (ErrTooShort), constant header
// (ErrBadHeader), inverse bytes (ErrChecksumMismatch). A powered-on payload
// with an unknown mode nibble fails with ErrUnknownOperatingMode; a powered-off
// payload always decodes to ModeOff whatever its mode nibble says. Unknown fan
// codes decode to FanAuto.
func Decode(b []byte) (ClimateState, error) {
	p, err := PayloadFromBytes(b)
	if err != nil {
		return ClimateState{}, err
	}
	return DecodePayload(p)
}

// DecodePayload is Decode for a payload that is already the right size
func DecodePayload(p Payload) (ClimateState, error) {
	if err := p.Validate(); err != nil {
		return ClimateState{}, err
	}

	state := ClimateState{
		Power:       p[IndexPower] == PowerOn,
		Mode:        ModeOff,
		Temperature: int(p[IndexModeTemp]>>4) + TempOffset,
	}
	state.Fan, _ = FanFromCode(p[IndexFan])

	if state.Power {
		nibble := p[IndexModeTemp] & 0x0F
		mode, ok := ModeFromCode(nibble)
		if !ok {
			return ClimateState{}, newError(KindUnknownOperatingMode, IndexModeTemp, int(nibble), -1,
				"mode nibble 0x%X is not a known operating mode", nibble)
		}
		state.Mode = mode
	}

	return state, nil
}

// ModeFromCode maps an operating-mode nibble back to a Mode
func ModeFromCode(code byte) (Mode, bool) {
	switch code {
	case ModeCodeCool:
		return ModeCool, true
	case ModeCodeHeat:
		return ModeHeat, true
	case ModeCodeAuto:
		return ModeAuto, true
	case ModeCodeFan:
		return ModeFanOnly, true
	case ModeCodeDry:
		return ModeDry, true
	default:
		return ModeOff, false
	}
}

// FanFromCode maps a fan byte back to a FanSpeed. Unknown codes give
// FanAuto and false.
func FanFromCode(code byte) (FanSpeed, bool) {
	switch code {
	case FanCodeAuto:
		return FanAuto, true
	case FanCodeLow:
		return FanLow, true
	case FanCodeMedium:
		return FanMedium, true
	case FanCodeHigh:
		return FanHigh, true
	default:
		return FanAuto, false
	}
}

// ModeCode returns the operating-mode nibble for a mode
func ModeCode(m Mode) (byte, bool) {
	code, ok := modeCodes[m]
	return code, ok
}

// FanCode returns the fan byte for a fan speed
func FanCode(f FanSpeed) (byte, bool) {
	code, ok := fanCodes[f]
	return code, ok
}
