package props

import (
	"bytes"
	"io/ioutil"
	"math"
	"os"
	"strconv"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Store is a flat key/value store with typed accessors. Values are kept as strings, like in the
// props file. A store without a filename lives only in memory.
type Store struct {
	filename string
	p        *properties.Properties
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{p: newProperties()}
}

func newProperties() *properties.Properties {
	result := properties.NewProperties()
	result.DisableExpansion = true
	return result
}

// Open the props file with the given name. A missing file results in an empty store that will be
// written to this file on Save.
func Open(filename string) (*Store, error) {
	result := &Store{filename: filename}

	buf, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		log.WithField("file", filename).Info("props file not found, starting with defaults")
		result.p = newProperties()
		return result, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read props file %s", filename)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	result.p, err = loader.LoadBytes(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse props file %s", filename)
	}

	return result, nil
}

// Save writes the store into its props file, sorted by key.
func (s *Store) Save() error {
	if s.filename == "" {
		return errors.New("cannot save an in-memory store")
	}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return err
	}
	if err := ioutil.WriteFile(s.filename, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "cannot write props file %s", s.filename)
	}
	return nil
}

// Write the store in props file format, sorted by key.
func (s *Store) Write(buf *bytes.Buffer) error {
	s.p.Sort()
	if _, err := s.p.Write(buf, properties.UTF8); err != nil {
		return errors.Wrap(err, "cannot encode props")
	}
	return nil
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return s.p.Len()
}

// Keys returns all keys in the store.
func (s *Store) Keys() []string {
	return s.p.Keys()
}

// String returns the value of the given key.
func (s *Store) String(key string) (string, bool) {
	return s.p.Get(key)
}

// Int returns the value of the given key as integer. Malformed values are treated as missing.
func (s *Store) Int(key string) (int64, bool) {
	raw, ok := s.p.Get(key)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.WithField("key", key).Warnf("ignoring malformed integer %q", raw)
		return 0, false
	}
	return value, true
}

// Float returns the value of the given key as float. Malformed and non-finite values are treated
// as missing.
func (s *Store) Float(key string) (float64, bool) {
	raw, ok := s.p.Get(key)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		log.WithField("key", key).Warnf("ignoring malformed float %q", raw)
		return 0, false
	}
	return value, true
}

// SetString sets the value of the given key.
func (s *Store) SetString(key string, value string) {
	if _, _, err := s.p.Set(key, value); err != nil {
		log.WithField("key", key).WithError(err).Warn("cannot set property")
	}
}

// SetInt sets the value of the given key.
func (s *Store) SetInt(key string, value int64) {
	s.SetString(key, strconv.FormatInt(value, 10))
}

// SetFloat sets the value of the given key.
func (s *Store) SetFloat(key string, value float64) {
	s.SetString(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// Clear removes all keys.
func (s *Store) Clear() {
	s.p = newProperties()
}
