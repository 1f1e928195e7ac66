// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/index/rtree"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
)

// A Layer names a set of map features, such as province borders.
type Layer string

const (
	Coastline Layer = "coastline"
	Nation    Layer = "nation"
	Province  Layer = "province"
	County    Layer = "county"
	River     Layer = "river"
	RiverHigh Layer = "river_high"
)

// DefaultFiles maps each layer to its shapefile name under the
// store's directory.
var DefaultFiles = map[Layer]string{
	Coastline: "coastline.shp",
	Nation:    "bou1_4p.shp",
	Province:  "bou2_4p.shp",
	County:    "BOUNT_poly.shp",
	River:     "hyd1_4l.shp",
	RiverHigh: "hyd2_4l.shp",
}

// A Feature is one shape of a layer, in longitude/latitude degrees.
type Feature struct {
	Layer Layer
	geom.Geom
}

// ReadShapefile reads every shape of the shapefile at path.
// Coordinates are taken to be longitude and latitude.
func ReadShapefile(path string, layer Layer) ([]*Feature, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", path, err)
	}
	defer d.Close()
	var fs []*Feature
	for {
		g, _, more := d.DecodeRowFields()
		if !more {
			break
		}
		if g == nil {
			continue
		}
		fs = append(fs, &Feature{Layer: layer, Geom: g})
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("maps: %s: %w", path, err)
	}
	return fs, nil
}

// StoreOptions configures a FeatureStore. The zero value is usable.
type StoreOptions struct {
	// Files overrides DefaultFiles.
	Files map[Layer]string
	// TTL is how long a loaded layer stays cached. Zero means
	// DefaultTTL.
	TTL time.Duration
	Log *zerolog.Logger
}

// DefaultTTL is how long a FeatureStore keeps a layer it has loaded.
const DefaultTTL = 30 * time.Minute

// A FeatureStore loads layers from a directory of shapefiles and
// indexes them for extent queries. Loaded layers are cached.
//
// A FeatureStore is safe for concurrent use.
type FeatureStore struct {
	dir   string
	files map[Layer]string
	log   zerolog.Logger
	cache *ttlcache.Cache[Layer, *rtree.Rtree]

	mu sync.Mutex // serializes loads
}

// NewFeatureStore returns a store that reads shapefiles from dir.
// opts may be nil.
func NewFeatureStore(dir string, opts *StoreOptions) *FeatureStore {
	var o StoreOptions
	if opts != nil {
		o = *opts
	}
	if o.Files == nil {
		o.Files = DefaultFiles
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	s := &FeatureStore{
		dir:   dir,
		files: o.Files,
		log:   zerolog.Nop(),
		cache: ttlcache.New[Layer, *rtree.Rtree](
			ttlcache.WithTTL[Layer, *rtree.Rtree](o.TTL),
		),
	}
	if o.Log != nil {
		s.log = *o.Log
	}
	return s
}

// Layers returns the layers whose shapefiles exist, sorted by name.
func (s *FeatureStore) Layers() []Layer {
	var ls []Layer
	for l, name := range s.files {
		if _, err := os.Stat(filepath.Join(s.dir, name)); err == nil {
			ls = append(ls, l)
		}
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

func (s *FeatureStore) load(l Layer) (*rtree.Rtree, error) {
	if it := s.cache.Get(l); it != nil {
		return it.Value(), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if it := s.cache.Get(l); it != nil {
		return it.Value(), nil
	}

	name, ok := s.files[l]
	if !ok {
		return nil, fmt.Errorf("maps: unknown layer %q", l)
	}
	start := time.Now()
	fs, err := ReadShapefile(filepath.Join(s.dir, name), l)
	if err != nil {
		return nil, err
	}
	tree := rtree.NewTree(25, 50)
	for _, f := range fs {
		tree.Insert(f)
	}
	s.cache.Set(l, tree, ttlcache.DefaultTTL)
	s.log.Debug().Str("layer", string(l)).Int("features", len(fs)).Dur("elapsed", time.Since(start)).Msg("loaded layer")
	return tree, nil
}

// Query returns the features of layer l whose bounds intersect e.
func (s *FeatureStore) Query(l Layer, e Extent) ([]*Feature, error) {
	tree, err := s.load(l)
	if err != nil {
		return nil, err
	}
	b := &geom.Bounds{
		Min: geom.Point{X: e.LonMin, Y: e.LatMin},
		Max: geom.Point{X: e.LonMax, Y: e.LatMax},
	}
	var fs []*Feature
	for _, x := range tree.SearchIntersect(b) {
		fs = append(fs, x.(*Feature))
	}
	return fs, nil
}

// Flush drops every cached layer.
func (s *FeatureStore) Flush() {
	s.cache.DeleteAll()
}

// parts returns the polylines making up g and whether they are closed
// rings. Points are not drawn as features.
func parts(g geom.Geom) (lines [][]geom.Point, closed bool) {
	switch g := g.(type) {
	case geom.LineString:
		return [][]geom.Point{g}, false
	case geom.MultiLineString:
		for _, l := range g {
			lines = append(lines, l)
		}
		return lines, false
	case geom.Polygon:
		for _, ring := range g {
			lines = append(lines, ring)
		}
		return lines, true
	case geom.MultiPolygon:
		for _, p := range g {
			for _, ring := range p {
				lines = append(lines, ring)
			}
		}
		return lines, true
	case *geom.Bounds:
		return [][]geom.Point{{
			g.Min, {X: g.Max.X, Y: g.Min.Y}, g.Max, {X: g.Min.X, Y: g.Max.Y},
		}}, true
	}
	return nil, false
}
