// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

// A Projection maps longitude and latitude in degrees to plane
// coordinates. Plate carrée coordinates are degrees. The others are
// meters.
type Projection struct {
	Name string
	// Def is the PROJ.4 definition, empty for plate carrée.
	Def string

	central float64
	fwd     proj.Transformer
}

// PlateCarree returns the equirectangular projection centered on
// longitude central.
func PlateCarree(central float64) *Projection {
	return &Projection{Name: "PlateCarree", central: central}
}

// Mercator returns a spherical Mercator projection centered on
// longitude central.
func Mercator(central float64) (*Projection, error) {
	return newProjection("Mercator", fmt.Sprintf(
		"+proj=merc +lon_0=%g +x_0=0 +y_0=0 +a=6378137 +b=6378137 +units=m", central))
}

// LambertConformal returns a Lambert conformal conic projection with
// origin (lon0, lat0) and standard parallels lat1 and lat2.
func LambertConformal(lon0, lat0, lat1, lat2 float64) (*Projection, error) {
	return newProjection("LambertConformal", fmt.Sprintf(
		"+proj=lcc +lat_1=%g +lat_2=%g +lat_0=%g +lon_0=%g +x_0=0 +y_0=0 +a=6370997 +b=6370997 +units=m",
		lat1, lat2, lat0, lon0))
}

// ChinaLambert is the Lambert projection used for maps of China.
func ChinaLambert() (*Projection, error) {
	return LambertConformal(105, 35, 30, 60)
}

// ParseProjection returns the projection called name with default
// parameters: "PlateCarree", "Mercator" or "LambertConformal".
func ParseProjection(name string) (*Projection, error) {
	switch name {
	case "", "PlateCarree", "platecarree", "pc":
		return PlateCarree(0), nil
	case "Mercator", "mercator", "merc":
		return Mercator(0)
	case "LambertConformal", "lambert", "lcc":
		return ChinaLambert()
	}
	return nil, fmt.Errorf("maps: unknown projection %q", name)
}

func newProjection(name, def string) (*Projection, error) {
	src, err := proj.Parse("+proj=longlat")
	if err != nil {
		return nil, err
	}
	dst, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("maps: parsing %s: %w", name, err)
	}
	fwd, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("maps: %s transform: %w", name, err)
	}
	return &Projection{Name: name, Def: def, fwd: fwd}, nil
}

// Project returns the plane coordinates of (lon, lat).
func (p *Projection) Project(lon, lat float64) (x, y float64, err error) {
	if p.fwd == nil {
		x = lon - p.central
		if x < -180 || x > 180 {
			x = To180(x)
		}
		return x, lat, nil
	}
	return p.fwd(lon, lat)
}

// Transformer returns p as a geometry transformer.
func (p *Projection) Transformer() proj.Transformer {
	return p.Project
}

func (p *Projection) String() string {
	if p.Def == "" {
		return p.Name
	}
	return p.Name + " (" + p.Def + ")"
}
