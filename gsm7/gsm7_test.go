package gsm7

import (
	"testing"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeptets(t *testing.T) {
	tcs := []struct {
		encoded string
		decoded string
	}{
		{"basic", "basic"},
		{"\x00\x0Fspecial", "@åspecial"},
		{"\x1B\x28extended\x1B\x29", "{extended}"},
		{"\x20space", " space"},
		{"\x1B\x0Afeed", "\ffeed"},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.decoded, FromSeptets([]byte(tc.encoded)))
		assert.Equal(t, []byte(tc.encoded), ToSeptets(tc.decoded))
	}

	assert.Equal(t, "?invalid?", FromSeptets([]byte("\x1B\x50invalid\x1B\x50")))
	assert.Equal(t, "?toobig", FromSeptets([]byte("\x81toobig")))
	assert.Equal(t, "a", FromSeptets([]byte("a\x1B")))

	assert.Equal(t, []byte("hi!\x20\x3F"), ToSeptets("hi! ☺"))
	assert.Equal(t, []byte{0x61, 0x3F, 0x62}, ToSeptets("a😀b"))
}

func TestValid(t *testing.T) {
	tcs := []struct {
		str   string
		valid bool
	}{
		{"", true},
		{" basic", true},
		{"@åspecial", true},
		{"{extended}", true},
		{"€10 [~]", true},
		{"hi! ☺", false},
		{"naïve", false},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.valid, IsValid(tc.str), tc.str)
	}
}

func TestSubstitutions(t *testing.T) {
	tcs := []struct {
		str string
		exp string
	}{
		{" basic", " basic"},
		{"êxtended", "extended"},
		{"“quoted”", `"quoted"`},
		{"\x09tab", " tab"},
		{"Ça va", "Ça va"},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.exp, ReplaceSubstitutions(tc.str), tc.str)
	}
}

func TestPack(t *testing.T) {
	assert.Equal(t, []byte{}, Pack(nil))
	assert.Equal(t, []byte{0xE8, 0x32, 0x9B, 0xFD, 0x06}, Pack(ToSeptets("hello")))
	assert.Equal(t, []byte{0x1B, 0x14}, Pack([]byte{0x1B, 0x28}))
	assert.Equal(t, []byte{0x3F}, Pack([]byte{0x7F & '?'}))

	// only the low 7 bits of each septet are used
	assert.Equal(t, Pack([]byte{0x41}), Pack([]byte{0xC1}))

	for n := 0; n <= 24; n++ {
		assert.Len(t, Pack(make([]byte, n)), (n*7+7)/8, "packed length for %d septets", n)
		assert.Equal(t, (n*7+7)/8, PackedLen(n))
	}
}

func TestUnpack(t *testing.T) {
	assert.Equal(t, []byte{}, Unpack(nil))
	assert.Equal(t, ToSeptets("hello"), Unpack([]byte{0xE8, 0x32, 0x9B, 0xFD, 0x06}))

	// every length round trips, including those that end exactly on an octet boundary
	text := "The quick brown fox jumps over the lazy dog"
	for n := 1; n <= len(text); n++ {
		septets := ToSeptets(text[:n])
		assert.Equal(t, septets, Unpack(Pack(septets)), "round trip of %d septets", n)
	}
}

func TestPackMatchesSMPP(t *testing.T) {
	// septet counts that don't leave a whole septet of padding in the final octet
	tcs := []string{"hello", "hellohello", "a{b}", "Hi @ 10€"}

	for _, text := range tcs {
		packed := Pack(ToSeptets(text))
		assert.Equal(t, pdutext.GSM7Packed(text).Encode(), packed, "packing of %q", text)
		assert.Equal(t, text, string(pdutext.GSM7Packed(packed).Decode()), "unpacking of %q", text)
	}
}

func TestUnpackDropsTrailingAt(t *testing.T) {
	// 8 septets fill exactly 7 octets so a final '@' (septet 0) can't be told apart from padding
	packed := Pack(ToSeptets("abcdefg@"))
	assert.Len(t, packed, 7)
	assert.Equal(t, ToSeptets("abcdefg"), Unpack(packed))

	encoded, err := Encode("abcdefg@")
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", decoded)

	// anywhere else '@' survives
	for _, text := range []string{"@", "abc@", "@bcdefgh", "abcdefgh@"} {
		encoded, err := Encode(text)
		require.NoError(t, err)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, text, decoded)
	}
}

func TestEncode(t *testing.T) {
	tcs := []struct {
		text string
		hex  string
	}{
		{"", ""},
		{"hello", "e8329bfd06"},
		{"hellohello", "e8329bfd4697d9ec37"},
		{"{", "1b14"},
	}
	for _, tc := range tcs {
		actual, err := Encode(tc.text)
		assert.NoError(t, err, tc.text)
		assert.Equal(t, tc.hex, actual, tc.text)

		decoded, err := Decode(tc.hex)
		assert.NoError(t, err, tc.hex)
		assert.Equal(t, tc.text, decoded, tc.hex)
	}

	_, err := Encode("hi ☺ there")
	var unsupported *models.UnsupportedCharacterError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, '☺', unsupported.Char)
	assert.Equal(t, 3, unsupported.Position)

	// positions are in UTF-16 code units
	_, err = Encode("😀a😀")
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 0, unsupported.Position)

	assert.Equal(t, "3f", EncodeLossy("😀"))
	assert.Equal(t, "e19f18", EncodeLossy("a😀b"))
}

func TestRoundTrip(t *testing.T) {
	tcs := []string{
		"a",
		"abcdefg",
		"abcdefgh",
		"Hello World!",
		"Ünicode? No, GSM: ÄÖÑÜ§¿äöñüà £$¥èéùìòÇ",
		"line one\nline two\r\n",
		"{braces} and [brackets] cost 10€ \\o/ ~ | ^",
		"{}€\\~[]|^",
		"\f",
		"1234567{",
	}
	for _, text := range tcs {
		encoded, err := Encode(text)
		require.NoError(t, err, text)

		decoded, err := Decode(encoded)
		require.NoError(t, err, encoded)
		assert.Equal(t, text, decoded, "round trip of %q", text)
	}
}

func TestDecode(t *testing.T) {
	text, err := Decode("e8 32 9b\tfd\n06")
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	text, err = Decode("E8329BFD06")
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	// a dangling half octet is ignored
	text, err = Decode("e8329bfd06f")
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = Decode("zz")
	var invalid *models.InvalidHexError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'z', invalid.Char)
	assert.Equal(t, 0, invalid.Position)

	_, err = Decode("e832 9bgd")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'g', invalid.Char)
	assert.Equal(t, 6, invalid.Position)
}

func TestUnpacked(t *testing.T) {
	assert.Equal(t, "68656c6c6f", EncodeUnpacked("hello"))
	assert.Equal(t, "1b283f1b29", EncodeUnpacked("{☺}"))

	text, err := DecodeUnpacked("68 65 6c 6c 6f")
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)

	text, err = DecodeUnpacked("1b651b3c")
	assert.NoError(t, err)
	assert.Equal(t, "€[", text)

	_, err = DecodeUnpacked("6x")
	assert.ErrorAs(t, err, new(*models.InvalidHexError))
}
