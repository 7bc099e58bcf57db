package rectarena

import (
	"encoding/json"
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// PrintDetailedMap writes a json object describing the arena and every tracked rectangle,
// ordered by (y, x), to writer
func (a *Arena) PrintDetailedMap(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	a.writeArenaJson(&obj)

	regions := obj.Name("Regions").Array()
	defer regions.End()

	_ = a.VisitAllRegions(func(rect Rectangle, free bool) error {
		region := regions.Object()
		regionType := "ALLOCATED"
		if free {
			regionType = "FREE"
		}

		region.Name("Type").String(regionType)
		region.Name("X").Int(int(rect.X))
		region.Name("Y").Int(int(rect.Y))
		region.Name("Width").Int(int(rect.Width))
		region.Name("Height").Int(int(rect.Height))
		region.End()
		return nil
	})
}

// BuildStatsString returns the output of PrintDetailedMap as a string
func (a *Arena) BuildStatsString() string {
	writer := jwriter.NewWriter()
	a.PrintDetailedMap(&writer)

	return string(writer.Bytes())
}

// areaJson formats an area as a json number. Areas of large arenas do not fit in an int.
func areaJson(area uint64) json.RawMessage {
	return json.RawMessage(strconv.FormatUint(area, 10))
}

func (a *Arena) writeArenaJson(obj *jwriter.ObjectState) {
	var stats Statistics
	a.AddStatistics(&stats)

	obj.Name("Width").Int(int(a.width))
	obj.Name("Height").Int(int(a.height))
	obj.Name("TotalArea").Raw(areaJson(stats.ArenaArea))
	obj.Name("FreeArea").Raw(areaJson(stats.ArenaArea - stats.AllocatedArea))
	obj.Name("Allocations").Int(stats.AllocationCount)
	obj.Name("FreeRegions").Int(a.free.count())
}
