package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nyaruka/smscodec/cli"
	"github.com/stretchr/testify/assert"
)

func executeCommand(t *testing.T, args ...string) string {
	root := cli.NewRootCmd()

	buffer := new(bytes.Buffer)
	root.SetOut(buffer)
	root.SetErr(buffer)
	root.SetArgs(args)
	err := root.Execute()
	assert.NoError(t, err, "Error executing command")
	return buffer.String()
}

func TestCommands(t *testing.T) {
	tcs := []struct {
		desc     string
		args     []string
		expected string
	}{
		{desc: "encode packed", args: []string{"encode", "--raw", "hello"}, expected: "e8329bfd06\n"},
		{desc: "encode unpacked", args: []string{"encode", "--raw", "--format", "gsm7", "hi"}, expected: "6869\n"},
		{desc: "encode utf16", args: []string{"encode", "-r", "-f", "utf16", "hi"}, expected: "00680069\n"},
		{desc: "decode packed", args: []string{"decode", "--raw", "E8329BFD06"}, expected: "hello\n"},
		{desc: "decode unpacked", args: []string{"decode", "--raw", "--format", "gsm7", "6869"}, expected: "hi\n"},
		{desc: "decode utf16", args: []string{"decode", "--raw", "--format", "utf16", "00680069"}, expected: "hi\n"},
		{desc: "analyze", args: []string{"analyze", "--raw", "hi 😀"}, expected: "utf16\n"},
		{desc: "segments", args: []string{"segments", "--raw", "--encoding", "utf16", strings.Repeat("a", 100)}, expected: strings.Repeat("a", 67) + "\n" + strings.Repeat("a", 33) + "\n"},
	}

	for _, tc := range tcs {
		out := executeCommand(t, tc.args...)
		assert.Equal(t, tc.expected, out, "output mismatch for %s", tc.desc)
	}
}

func TestCommandErrors(t *testing.T) {
	tcs := []struct {
		desc     string
		args     []string
		contains string
	}{
		{desc: "missing text", args: []string{"encode"}, contains: "usage: encode <text>"},
		{desc: "unsupported character", args: []string{"encode", "hi 😀"}, contains: "text contains characters that cannot be encoded with GSM-7"},
		{desc: "unknown format", args: []string{"decode", "--format", "base64", "00"}, contains: "unknown format 'base64'"},
		{desc: "invalid hex", args: []string{"decode", "--format", "utf16", "00zz"}, contains: "invalid hex string"},
		{desc: "unknown encoding", args: []string{"segments", "--encoding", "ascii", "hi"}, contains: "unknown encoding 'ascii'"},
	}

	for _, tc := range tcs {
		out := executeCommand(t, tc.args...)
		assert.Contains(t, out, tc.contains, "output mismatch for %s", tc.desc)
	}
}

func TestJSONOutput(t *testing.T) {
	out := executeCommand(t, "encode", "hello")
	assert.Contains(t, out, `"hex"`)
	assert.Contains(t, out, `"e8329bfd06"`)
	assert.Contains(t, out, `"segment_info"`)

	out = executeCommand(t, "analyze", "hi 😀")
	assert.Contains(t, out, `"recommended_encoding"`)
	assert.Contains(t, out, `"unsupported"`)

	out = executeCommand(t, "segments", "hello")
	assert.Contains(t, out, `"chars_per_segment"`)
	assert.Contains(t, out, `"hello"`)
}
