package bandplan

import (
	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandstack"
)

func cwl(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeCWL, core.FilterF6)
}

func cwu(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeCWU, core.FilterF6)
}

func lsb(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeLSB, core.FilterF5)
}

func usb(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeUSB, core.FilterF5)
}

func fmn(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeFMN, core.FilterF0)
}

func am(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeAM, core.FilterF3)
}

func sam(f core.Frequency) bandstack.Entry {
	return bandstack.NewEntry(f, core.ModeSAM, core.FilterF3)
}

var (
	catalog136 = bandstack.Catalog{cwl(135800), cwl(137100)}
	catalog472 = bandstack.Catalog{cwl(472100), cwl(475100)}
	catalog160 = bandstack.Catalog{cwl(1810000), cwu(1835000), usb(1845000)}
	catalog80  = bandstack.Catalog{cwl(3501000), lsb(3751000), lsb(3850000)}
	catalog40  = bandstack.Catalog{cwl(7001000), lsb(7152000), lsb(7255000)}
	catalog30  = bandstack.Catalog{cwu(10120000), cwu(10130000), cwu(10140000)}
	catalog20  = bandstack.Catalog{cwu(14010000), usb(14150000), usb(14230000), usb(14336000)}
	catalog17  = bandstack.Catalog{cwu(18068600), usb(18125000), usb(18140000)}
	catalog15  = bandstack.Catalog{cwu(21001000), usb(21255000), usb(21300000)}
	catalog12  = bandstack.Catalog{cwu(24895000), usb(24900000), usb(24910000)}
	catalog10  = bandstack.Catalog{cwu(28010000), usb(28300000), usb(28400000)}
	catalog6   = bandstack.Catalog{cwu(50010000), usb(50125000), usb(50200000)}
	catalog70  = bandstack.Catalog{cwu(70010000), usb(70200000), usb(70250000)}
	catalog144 = bandstack.Catalog{
		cwu(144010000), usb(144200000), usb(144250000),
		fmn(145600000), fmn(145725000), fmn(145900000),
	}
	catalog220  = bandstack.Catalog{cwu(220010000), usb(220200000), usb(220250000)}
	catalog430  = bandstack.Catalog{cwu(430010000), usb(432100000), usb(432300000)}
	catalog902  = bandstack.Catalog{cwu(902010000), usb(902100000), usb(902300000)}
	catalog1240 = bandstack.Catalog{cwu(1240010000), usb(1240100000), usb(1240300000)}
	catalog2300 = bandstack.Catalog{cwu(2300010000), usb(2300100000), usb(2300300000)}
	catalog3400 = bandstack.Catalog{cwu(3400010000), usb(3400100000), usb(3400300000)}
	catalogAIR  = bandstack.Catalog{
		am(118800000), am(120000000), am(121700000),
		am(124100000), am(126600000), am(136500000),
	}
	catalogGEN = bandstack.Catalog{am(909000), am(5975000), am(13845000)}
	catalogWWV = bandstack.Catalog{
		sam(2500000), sam(5000000), sam(10000000),
		sam(15000000), sam(20000000), sam(25000000),
	}

	// a transverter slot starts with placeholder entries that get tuned once the slot is in use
	catalogTransverter = bandstack.Catalog{
		bandstack.NewEntry(0, core.ModeUSB, core.FilterF6),
		bandstack.NewEntry(0, core.ModeUSB, core.FilterF6),
		bandstack.NewEntry(0, core.ModeUSB, core.FilterF6),
	}
)

// the 60m catalogs, selected by the region
var (
	catalog60VFO = bandstack.Catalog{
		cwu(5352750), usb(5354000), usb(5357000), usb(5360000), usb(5363000),
	}
	catalog60WRC15 = bandstack.Catalog{
		usb(5354000), usb(5357000), usb(5360000), usb(5363000), cwu(5352750),
	}
	catalog60US = bandstack.Catalog{
		usb(5332000), usb(5348000), usb(5358500), usb(5373000), usb(5405000),
	}
	catalog60UK = bandstack.Catalog{
		usb(5261250), usb(5280000), usb(5290250), usb(5302500),
		usb(5318000), usb(5335500), usb(5356000), usb(5368250),
		usb(5380000), usb(5398250), usb(5405000),
	}
	catalog60CA = bandstack.Catalog{
		usb(5332000), usb(5348000), usb(5358500), usb(5373000), usb(5405000),
	}
)
