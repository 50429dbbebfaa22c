package props

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedAccess(t *testing.T) {
	s := New()
	s.SetInt("band.7.current", 2)
	s.SetFloat("band.7.pa_calibration", 38.8)
	s.SetString("band.24.title", "2m XVTR")

	i, ok := s.Int("band.7.current")
	assert.True(t, ok)
	assert.Equal(t, int64(2), i)

	f, ok := s.Float("band.7.pa_calibration")
	assert.True(t, ok)
	assert.Equal(t, 38.8, f)

	str, ok := s.String("band.24.title")
	assert.True(t, ok)
	assert.Equal(t, "2m XVTR", str)

	_, ok = s.Int("band.8.current")
	assert.False(t, ok)
}

func TestMalformedValuesAreMissing(t *testing.T) {
	s := New()
	s.SetString("band.7.current", "two")

	_, ok := s.Int("band.7.current")
	assert.False(t, ok)
	_, ok = s.Float("band.7.current")
	assert.False(t, ok)
}

func TestFileRoundtrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "radio.props")

	s, err := Open(filename)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s.SetInt("band.24.stack.0.a", 144300000)
	s.SetInt("region", 1)
	s.SetString("band.24.title", "2m ${not expanded}")
	require.NoError(t, s.Save())

	loaded, err := Open(filename)
	require.NoError(t, err)

	f, ok := loaded.Int("band.24.stack.0.a")
	assert.True(t, ok)
	assert.Equal(t, int64(144300000), f)
	title, _ := loaded.String("band.24.title")
	assert.Equal(t, "2m ${not expanded}", title)
	assert.Equal(t, 3, loaded.Len())
}

func TestFileRoundtrip_SelfReference(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "radio.props")
	s := &Store{filename: filename, p: newProperties()}
	s.SetString("band.24.title", "${band.24.title}")
	require.NoError(t, s.Save())

	loaded, err := Open(filename)
	require.NoError(t, err)

	title, ok := loaded.String("band.24.title")
	assert.True(t, ok)
	assert.Equal(t, "${band.24.title}", title)
}

func TestNonFiniteFloatsAreMissing(t *testing.T) {
	tt := []string{"NaN", "nan", "+Inf", "-Inf", "inf"}

	for _, value := range tt {
		t.Run(value, func(t *testing.T) {
			s := New()
			s.SetString("band.7.pa_calibration", value)

			_, ok := s.Float("band.7.pa_calibration")

			assert.False(t, ok)
		})
	}
}

func TestOpenExistingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "radio.props")
	require.NoError(t, ioutil.WriteFile(filename, []byte("band.3.current=2\nband.3.pa_calibration=40.5\n"), 0644))

	s, err := Open(filename)
	require.NoError(t, err)

	current, ok := s.Int("band.3.current")
	assert.True(t, ok)
	assert.Equal(t, int64(2), current)
	calibration, ok := s.Float("band.3.pa_calibration")
	assert.True(t, ok)
	assert.Equal(t, 40.5, calibration)
}

func TestWriteIsSorted(t *testing.T) {
	s := New()
	s.SetInt("region", 0)
	s.SetInt("band.1.current", 0)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	assert.Equal(t, []string{"band.1.current", "region"}, s.Keys())
}

func TestSaveInMemoryFails(t *testing.T) {
	assert.Error(t, New().Save())
}

func TestClear(t *testing.T) {
	s := New()
	s.SetInt("band.24.current", 1)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	_, ok := s.Int("band.24.current")
	assert.False(t, ok)
}
