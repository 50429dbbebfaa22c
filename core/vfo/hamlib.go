package vfo

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/ftl/rigproxy/pkg/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ftl/bandkeeper/core"
)

// DefaultRigAddress is the default address of rigctld.
const DefaultRigAddress = "localhost:4532"

// OpenHamlib opens a connection to a hamlib rig at the given network address. If address is empty,
// DefaultRigAddress is used.
func OpenHamlib(address string) (*HamlibRig, error) {
	if address == "" {
		address = DefaultRigAddress
	}
	out, err := net.Dial("tcp", address)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open rig connection")
	}

	trx := protocol.NewTransceiver(out)
	trx.WhenDone(func() {
		out.Close()
	})

	log.WithField("address", address).Info("connected to hamlib rig")
	return &HamlibRig{trx: trx, address: address}, nil
}

// HamlibRig controls a rig through the hamlib network protocol.
type HamlibRig struct {
	trx     *protocol.Transceiver
	address string
}

// Close the connection to the rig.
func (r *HamlibRig) Close() {
	r.trx.Close()
	log.WithField("address", r.address).Info("rig connection closed")
}

// Frequency reads the current frequency of the rig.
func (r *HamlibRig) Frequency(ctx context.Context) (core.Frequency, error) {
	request := protocol.Request{Command: protocol.ShortCommand("f")}
	response, err := r.trx.Send(ctx, request)
	if err != nil {
		return 0, errors.Wrap(err, "polling frequency failed")
	}
	if len(response.Data) == 0 {
		return 0, errors.New("empty frequency response")
	}

	return hamlibToF(response.Data[0])
}

// SetFrequency tunes the rig to the given frequency.
func (r *HamlibRig) SetFrequency(ctx context.Context, f core.Frequency) error {
	request := protocol.Request{Command: protocol.ShortCommand("F"), Args: []string{fToHamlib(f)}}
	_, err := r.trx.Send(ctx, request)
	if err != nil {
		return errors.Wrapf(err, "sending frequency %v failed", f)
	}
	return nil
}

// SetMode sets the mode of the rig, keeping the rig's default passband.
func (r *HamlibRig) SetMode(ctx context.Context, mode core.Mode) error {
	hamlibMode, ok := modeToHamlib(mode)
	if !ok {
		return errors.Errorf("mode %v is not supported by hamlib", mode)
	}
	request := protocol.Request{Command: protocol.ShortCommand("M"), Args: []string{hamlibMode, "0"}}
	_, err := r.trx.Send(ctx, request)
	if err != nil {
		return errors.Wrapf(err, "sending mode %v failed", mode)
	}
	return nil
}

var hamlibModes = map[core.Mode]string{
	core.ModeLSB:  "LSB",
	core.ModeUSB:  "USB",
	core.ModeDSB:  "DSB",
	core.ModeCWL:  "CWR",
	core.ModeCWU:  "CW",
	core.ModeFMN:  "FM",
	core.ModeAM:   "AM",
	core.ModeDIGU: "PKTUSB",
	core.ModeDIGL: "PKTLSB",
	core.ModeSAM:  "SAM",
}

func modeToHamlib(mode core.Mode) (string, bool) {
	result, ok := hamlibModes[mode]
	return result, ok
}

func fToHamlib(f core.Frequency) string {
	return fmt.Sprintf("%d", int64(f))
}

func hamlibToF(s string) (core.Frequency, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// some rigs report fractional Hz
		ff, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, errors.Wrapf(err, "wrong frequency format %s", s)
		}
		f = int64(ff)
	}
	return core.Frequency(f), nil
}
