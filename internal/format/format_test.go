package format

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	datemask "github.com/reoring/datemask"
)

func sampleRecords(t *testing.T) (Record, Record) {
	t.Helper()
	p := datemask.MustNew(datemask.Config{})
	res := p.Process("02/29/2019")
	p.Process("02/29/2020")
	fin := p.Finalize()
	return FromResult("02/29/2019", res), FromFinalize(fin)
}

func TestText(t *testing.T) {
	proc, fin := sampleRecords(t)
	var buf bytes.Buffer
	enc, err := New("text", &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(proc))
	require.NoError(t, enc.Encode(fin))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `process  "02/29/2019" -> "2/29/201" [invalid_leap_day: 2019 is not a leap year; February has 28 days]`, lines[0])
	assert.Equal(t, `finalize "2/29/2020" committed=29/02/2020`, lines[1])
}

func TestJSON(t *testing.T) {
	proc, fin := sampleRecords(t)
	var buf bytes.Buffer
	enc, err := New("json", &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(proc))
	require.NoError(t, enc.Encode(fin))

	dec := json.NewDecoder(&buf)
	var got Record
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, proc, got)
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, "29/02/2020", got.Committed)
	assert.True(t, got.Valid)
}

func TestYAML(t *testing.T) {
	proc, _ := sampleRecords(t)
	var buf bytes.Buffer
	enc, err := New("yaml", &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(proc))

	var got Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2/29/201", got.Display)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, datemask.CodeInvalidLeapDay, got.Issues[0].Code)
	assert.Equal(t, "2019", got.Issues[0].Params["year"])
}

func TestUnknownOutput(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
