package bandplan

import (
	"fmt"
	"strings"

	"github.com/ftl/bandkeeper/core"
	"github.com/ftl/bandkeeper/core/bandstack"
)

// Region selects the 60m channelization. The numeric values are persisted and must not change.
type Region int

// All regions.
const (
	RegionVFO Region = iota
	RegionUK
	RegionUS
	RegionWRC15
	RegionCA
)

// Regions lists all regions in their persisted order.
var Regions = []Region{RegionVFO, RegionUK, RegionUS, RegionWRC15, RegionCA}

// Valid indicates a known region.
func (r Region) Valid() bool {
	_, ok := regionPlans[r]
	return ok
}

func (r Region) String() string {
	plan, ok := regionPlans[r]
	if !ok {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return plan.label
}

// Name is the short name of the region, as accepted by ParseRegion.
func (r Region) Name() string {
	plan, ok := regionPlans[r]
	if !ok {
		return ""
	}
	return plan.name
}

// ParseRegion accepts the short name of a region (vfo, uk, us, wrc15, ca), case insensitive.
func ParseRegion(s string) (Region, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Regions {
		if regionPlans[r].name == s {
			return r, true
		}
	}
	return 0, false
}

// Channel marks a 60m channel on the panadapter.
type Channel struct {
	Frequency core.Frequency
	Width     core.Frequency
}

// Range covers the channel from center - width/2 to center + width/2.
func (c Channel) Range() core.FrequencyRange {
	return core.FrequencyRange{From: c.Frequency - c.Width/2, To: c.Frequency + c.Width/2}
}

type regionPlan struct {
	name     string
	label    string
	catalog  bandstack.Catalog
	channels []Channel
}

var regionPlans = map[Region]regionPlan{
	RegionVFO: {
		name:    "vfo",
		label:   "NONE (VFO)",
		catalog: catalog60VFO,
		channels: []Channel{
			{5350000, 200000},
		},
	},
	RegionUK: {
		name:    "uk",
		label:   "UK Channels",
		catalog: catalog60UK,
		channels: []Channel{
			{5261250, 5500},
			{5280000, 8000},
			{5290250, 3500},
			{5302500, 9000},
			{5318000, 10000},
			{5335500, 5000},
			{5356000, 4000},
			{5368250, 12500},
			{5380000, 4000},
			{5398250, 6500},
			{5405000, 3000},
		},
	},
	RegionUS: {
		name:    "us",
		label:   "US Channels",
		catalog: catalog60US,
		channels: []Channel{
			{5332000, 3000},
			{5348000, 3000},
			{5359000, 15000}, // WRC-15 segment 5351.5-5366.5kHz
			{5373000, 3000},
			{5405000, 3000},
		},
	},
	RegionWRC15: {
		name:    "wrc15",
		label:   "WRC15",
		catalog: catalog60WRC15,
		channels: []Channel{
			{5359000, 15000},
		},
	},
	RegionCA: {
		name:    "ca",
		label:   "CA Channels",
		catalog: catalog60CA,
		channels: []Channel{
			{5332000, 3000},
			{5348000, 3000},
			{5358500, 3000},
			{5373000, 3000},
			{5405000, 3000},
		},
	},
}
