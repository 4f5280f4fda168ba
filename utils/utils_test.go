package utils_test

import (
	"testing"

	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/utils"
	"github.com/stretchr/testify/assert"
)

func TestCleanHex(t *testing.T) {
	assert.Equal(t, "", utils.CleanHex(""))
	assert.Equal(t, "e8329bfd06", utils.CleanHex(" e8 32\n9b\tfd06 "))
}

func TestValidateHex(t *testing.T) {
	assert.NoError(t, utils.ValidateHex(""))
	assert.NoError(t, utils.ValidateHex("0123456789abcdefABCDEF"))

	err := utils.ValidateHex("00g0")
	assert.Equal(t, &models.InvalidHexError{Char: 'g', Position: 2}, err)
	assert.EqualError(t, err, "invalid hex string: contains non-hexadecimal character 'g' at position 2")
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, utils.UTF16Len(""))
	assert.Equal(t, 5, utils.UTF16Len("hello"))
	assert.Equal(t, 4, utils.UTF16Len("héé€"))
	assert.Equal(t, 4, utils.UTF16Len("a😀b"))

	assert.Equal(t, 1, utils.UTF16RuneLen('a'))
	assert.Equal(t, 1, utils.UTF16RuneLen('\uffff'))
	assert.Equal(t, 2, utils.UTF16RuneLen('😀'))
}

type validated struct {
	Name string `validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, utils.Validate(&validated{Name: "Bob"}))
	assert.EqualError(t, utils.Validate(&validated{}), "Key: 'validated.Name' Error:Field validation for 'Name' failed on the 'required' tag")
}
