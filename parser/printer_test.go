package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	src := []byte(`(fn pick ((c bool)) ((if (not c) ((set r 1)) ((print "no"))) (return r)))`)

	var buf bytes.Buffer
	assert.NoError(t, Parse(src, NewPrinter(&buf, src)))

	expected := `fn pick
  parameters
    c bool
  statements
    if
      call not
        identifier c
      statements
        set r
          integer 1
      statements
        call print
          string_literal "no"
    return
      identifier r
`
	assert.Equal(t, expected, buf.String())
}
