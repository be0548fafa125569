package osmparser

// NodeRecord. a map node. ID is the external (osm) node id.
type NodeRecord struct {
	ID  string
	Lat float64
	Lon float64
}

func NewNodeRecord(id string, lat, lon float64) NodeRecord {
	return NodeRecord{
		ID:  id,
		Lat: lat,
		Lon: lon,
	}
}

// WayRecord. an ordered polyline of node references with its tags.
type WayRecord struct {
	Tags     map[string]string
	NodeRefs []string
}

func NewWayRecord(tags map[string]string, nodeRefs []string) WayRecord {
	return WayRecord{
		Tags:     tags,
		NodeRefs: nodeRefs,
	}
}

type MapFormat int

const (
	FORMAT_UNKNOWN MapFormat = iota
	FORMAT_XML
	FORMAT_XML_BZIP2
	FORMAT_PBF
)

func (f MapFormat) String() string {
	switch f {
	case FORMAT_XML:
		return "osm-xml"
	case FORMAT_XML_BZIP2:
		return "osm-xml-bz2"
	case FORMAT_PBF:
		return "osm-pbf"
	default:
		return "unknown"
	}
}
