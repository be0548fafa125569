package osmparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/k0kubun/go-ansi"
	"github.com/lintang-b-s/navigatorx-astar/pkg/geo"
	"github.com/lintang-b-s/navigatorx-astar/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported map file format")

const progressStep = 10000

// objectScanner. common surface of the osmxml and osmpbf scanners
type objectScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

type OsmParser struct {
	showProgress bool
	pbfProcs     int
}

type ParserOption func(*OsmParser)

// WithProgress. draw a progress spinner on stdout while scanning
func WithProgress(enabled bool) ParserOption {
	return func(p *OsmParser) {
		p.showProgress = enabled
	}
}

// WithPbfProcs. number of goroutines decoding pbf blocks, 0 lets osmpbf decide
func WithPbfProcs(n int) ParserOption {
	return func(p *OsmParser) {
		p.pbfProcs = n
	}
}

func NewOSMParser(opts ...ParserOption) *OsmParser {
	p := &OsmParser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DetectFormat. map format from the file extension
func DetectFormat(mapFile string) MapFormat {
	name := strings.ToLower(mapFile)
	switch {
	case strings.HasSuffix(name, ".osm.bz2"), strings.HasSuffix(name, ".xml.bz2"):
		return FORMAT_XML_BZIP2
	case strings.HasSuffix(name, ".pbf"):
		return FORMAT_PBF
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return FORMAT_XML
	default:
		return FORMAT_UNKNOWN
	}
}

// Parse. decode node and way records from an openstreetmap file (.osm, .osm.bz2, .osm.pbf)
func (p *OsmParser) Parse(ctx context.Context, mapFile string, logger *zap.Logger) ([]NodeRecord, []WayRecord, error) {
	format := DetectFormat(mapFile)
	if format == FORMAT_UNKNOWN {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mapFile)
	}

	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	logger.Sugar().Infof("parsing openstreetmap file %s (%s)...", mapFile, format)
	return p.ParseReader(ctx, f, format, logger)
}

// ParseReader. decode node and way records from r.
// nodes with invalid coordinates and ways with fewer than two node refs are dropped.
func (p *OsmParser) ParseReader(ctx context.Context, r io.Reader, format MapFormat,
	logger *zap.Logger) ([]NodeRecord, []WayRecord, error) {
	scanner, err := p.newScanner(ctx, r, format)
	if err != nil {
		return nil, nil, err
	}
	defer scanner.Close()

	var bar *progressbar.ProgressBar
	if p.showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan]Parsing osm objects..."),
			progressbar.OptionSpinnerType(14),
		)
	}

	nodes := make([]NodeRecord, 0)
	ways := make([]WayRecord, 0)
	droppedNodes, droppedWays := 0, 0

	count := 0
	for scanner.Scan() {
		count++
		if count%progressStep == 0 {
			if util.StopConcurrentOperation(ctx) {
				return nil, nil, ctx.Err()
			}
			if bar != nil {
				bar.Add(progressStep)
			}
		}

		switch o := scanner.Object().(type) {
		case *osm.Node:
			if geo.ValidateCoordinate(o.Lat, o.Lon) != nil {
				droppedNodes++
				continue
			}
			nodes = append(nodes, NewNodeRecord(formatID(int64(o.ID)), o.Lat, o.Lon))
		case *osm.Way:
			if len(o.Nodes) < 2 {
				droppedWays++
				continue
			}
			refs := make([]string, 0, len(o.Nodes))
			for _, wn := range o.Nodes {
				refs = append(refs, formatID(int64(wn.ID)))
			}
			ways = append(ways, NewWayRecord(o.Tags.Map(), refs))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan openstreetmap objects: %w", err)
	}
	if bar != nil {
		bar.Finish()
	}

	logger.Sugar().Infof("scanned openstreetmap objects: %d, nodes: %d, ways: %d", count, len(nodes), len(ways))
	if droppedNodes > 0 || droppedWays > 0 {
		logger.Debug("dropped malformed objects",
			zap.Int("nodes", droppedNodes), zap.Int("ways", droppedWays))
	}
	return nodes, ways, nil
}

func (p *OsmParser) newScanner(ctx context.Context, r io.Reader, format MapFormat) (objectScanner, error) {
	switch format {
	case FORMAT_XML:
		return osmxml.New(ctx, r), nil
	case FORMAT_XML_BZIP2:
		bz, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, err
		}
		return &closingScanner{objectScanner: osmxml.New(ctx, bz), closer: bz}, nil
	case FORMAT_PBF:
		return osmpbf.New(ctx, r, p.pbfProcs), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// closingScanner. closes the decompressor after the scanner
type closingScanner struct {
	objectScanner
	closer io.Closer
}

func (s *closingScanner) Close() error {
	err := s.objectScanner.Close()
	if cerr := s.closer.Close(); err == nil {
		err = cerr
	}
	return err
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
