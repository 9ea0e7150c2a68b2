// Package protocol implements the Mitsubishi SEZ air-conditioner IR frame format.
//
// This package converts between a ClimateState (power, mode, target
// temperature, fan speed) and the fixed 17-byte payload carried by one IR
// transmission. Turning the payload into mark/space timings is the job of
// package ir.
//
// # Frame Overview
//
// Every payload has this structure:
//   - Bytes 0-4: Constant header 0x23 0xCB 0x26 0x21 0x00
//   - Byte 5: Power (0x40 on, 0x00 off)
//   - Byte 6: (temperature - 16) << 4 | operating mode code
//   - Byte 7: Fan speed code
//   - Bytes 8-10: Reserved (0x04 0x00 0x00)
//   - Bytes 11-16: Bitwise complement of bytes 5-10
//
// There is no real checksum; the receiver only verifies the inverse bytes.
//
// # Operating Modes
//
//	Auto = 0x03   Heat = 0x02   Cool = 0x01   Dry = 0x05   Fan only = 0x00
//
// # Fan Speeds
//
//	Auto = 0x31   Low = 0x33   Medium = 0x35   High = 0x37
//
// The stock remote never sends 0x33; it only appears in feedback frames from
// other remotes. It still decodes to FanLow and FanLow still encodes to 0x33.
//
// # Usage Example - Encoding
//
//	payload, err := protocol.Encode(protocol.ClimateState{
//	    Power:       true,
//	    Mode:        protocol.ModeCool,
//	    Temperature: 22,
//	    Fan:         protocol.FanMedium,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(payload) // 23 CB 26 21 00 40 61 35 04 00 00 BF 9E CA FB FF FF
//
// # Usage Example - Decoding
//
//	state, err := protocol.Decode(received)
//	switch {
//	case errors.Is(err, protocol.ErrChecksumMismatch):
//	    // corrupted frame, drop it
//	case err != nil:
//	    // other failure
//	}
//
// # Error Handling
//
// The package distinguishes between:
//   - Structural errors: ErrTooShort, ErrBadHeader, ErrChecksumMismatch
//   - Value errors: ErrUnknownOperatingMode (decode), ErrUnsupportedMode (encode)
//
// All errors are *Error values carrying the failing byte index and unwrap to
// the matching sentinel.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package protocol
