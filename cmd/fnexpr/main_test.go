package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeSource(t *testing.T, src string) string {
	filename := filepath.Join(t.TempDir(), "prog.fx")
	assert.NoError(t, os.WriteFile(filename, []byte(src), 0644))
	return filename
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultDump(t *testing.T) {
	filename := writeSource(t, `(fn f () ((set x 5) (return x)))`)

	out, err := run(filename)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Atoms:\n"), out)
	assert.Contains(t, out, "Atom 0: fn (keyword_fn)")
	assert.Contains(t, out, "List 1 (function):")

	same, err := run("dump", filename)
	assert.NoError(t, err)
	assert.Equal(t, out, same)
}

func TestDumpJSON(t *testing.T) {
	filename := writeSource(t, `(fn f () ((return 1.5)))`)

	out, err := run("dump", "--format", "json", filename)
	assert.NoError(t, err)

	var doc struct {
		Atoms []struct {
			Text     string      `json:"text"`
			Property string      `json:"property"`
			Value    interface{} `json:"value"`
		} `json:"atoms"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &doc))
	if assert.Len(t, doc.Atoms, 4) {
		assert.Equal(t, "float", doc.Atoms[3].Property)
		assert.Equal(t, 1.5, doc.Atoms[3].Value)
	}

	_, err = run("dump", "--format", "xml", filename)
	assert.Error(t, err)

	huge := writeSource(t, `(fn f () ((return 99999999999999999999)))`)
	_, err = run("dump", "--format", "json", huge)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), huge+":1:18: literal out of range")
}

func TestDumpErrors(t *testing.T) {
	filename := writeSource(t, `(fn f () ((return 1))`)
	_, err := run(filename)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), filename+":1:21")

	_, err = run(filepath.Join(t.TempDir(), "missing.fx"))
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	filename := writeSource(t, "(fn f\n ())")

	out, err := run("tokens", filename)
	assert.NoError(t, err)
	assert.Equal(t, "1:0\topen_list\t\"(\"\n1:1\tatom\t\"fn\"\n1:4\tatom\t\"f\"\n2:1\topen_list\t\"(\"\n2:2\tclose_list\t\")\"\n2:3\tclose_list\t\")\"\n", out)

	out, err = run("tokens", "--refine", filename)
	assert.NoError(t, err)
	assert.Contains(t, out, "1:1\tfn\t\"fn\"\n1:4\tidentifier\t\"f\"\n")

	out, err = run("tokens", "--all", filename)
	assert.NoError(t, err)
	assert.Contains(t, out, "1:5\tnewline\t\"\\n\"\n2:0\twhitespace\t\" \"\n")
}

func TestCheck(t *testing.T) {
	out, err := run("check", writeSource(t, `(fn f ((a int)) ((set b a) (return b)))`))
	assert.NoError(t, err)
	assert.Contains(t, out, "ok, 1 functions, 1 parameters, 2 statements")

	out, err = run("check", writeSource(t, `(fn f () ((return a)))`))
	assert.Error(t, err)
	assert.Contains(t, out, "undefined variable: a")
}

func TestEvents(t *testing.T) {
	out, err := run("events", writeSource(t, `(fn f () ((g 1)))`))
	assert.NoError(t, err)
	assert.Equal(t, "fn f\n  parameters\n  statements\n    call g\n      integer 1\n", out)
}
