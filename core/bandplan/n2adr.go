package bandplan

// n2adrOC holds the open collector masks of the N2ADR filter board for 160m to 10m.
var n2adrOC = []struct {
	band BandID
	mask int
}{
	{Band160m, 1},
	{Band80m, 66},
	{Band60m, 68},
	{Band40m, 68},
	{Band30m, 72},
	{Band20m, 72},
	{Band17m, 80},
	{Band15m, 80},
	{Band12m, 96},
	{Band10m, 96},
}

// n2adrHPF is the OC bit that switches the 3MHz high pass filter.
const n2adrHPF = 64

// ApplyN2ADR sets the OC outputs of the HF bands as required by the N2ADR filter board.
// Without txOnly, the same mask is used for RX and TX. With txOnly, the board filters are only
// used for TX; on receive only the high pass filter bit is set from 80m upwards, if hpf is enabled.
func (r *Registry) ApplyN2ADR(txOnly, hpf bool) {
	rxHPF := 0
	if hpf {
		rxHPF = n2adrHPF
	}

	for _, oc := range n2adrOC {
		band := r.Band(oc.band)
		band.OCtx = oc.mask
		switch {
		case !txOnly:
			band.OCrx = oc.mask
		case oc.band == Band160m:
			band.OCrx = 0
		default:
			band.OCrx = rxHPF
		}
	}
}
