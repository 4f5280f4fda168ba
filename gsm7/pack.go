package gsm7

// Pack packs the passed in septets into octets, eight septets to every seven octets. The first
// septet occupies the low 7 bits of the first octet and each following septet continues where the
// previous one ended, spilling into the next octet. Unused high bits of the final octet are zero.
func Pack(septets []byte) []byte {
	packed := make([]byte, 0, PackedLen(len(septets)))

	var acc uint16 // bits not yet written out, lowest first
	var bits uint  // number of bits in acc

	for _, s := range septets {
		acc |= uint16(s&max) << bits
		bits += 7

		if bits >= 8 {
			packed = append(packed, byte(acc))
			acc >>= 8
			bits -= 8
		}
	}

	if bits > 0 {
		packed = append(packed, byte(acc))
	}
	return packed
}

// PackedLen returns the number of octets needed to pack the given number of septets
func PackedLen(numSeptets int) int {
	return (numSeptets*7 + 7) / 8
}

// Unpack unpacks the passed in octets into septets, inverting Pack. When the octets end exactly
// on a septet boundary the final septet is made up entirely of padding bits and is dropped if
// zero, so an unpack of a packed message of 7n septets gives back 7n septets.
func Unpack(octets []byte) []byte {
	septets := make([]byte, 0, len(octets)*8/7)

	var acc uint16
	var bits uint

	for _, o := range octets {
		acc |= uint16(o) << bits
		bits += 8

		for bits >= 7 {
			septets = append(septets, byte(acc)&max)
			acc >>= 7
			bits -= 7
		}
	}

	// 7 octets hold 8 septets, but 7 septets also pack into 7 octets leaving a zeroed one behind
	if len(octets)%7 == 0 && len(septets) > 0 && septets[len(septets)-1] == 0 {
		septets = septets[:len(septets)-1]
	}
	return septets
}
