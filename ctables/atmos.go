// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"github.com/nmcdev/go-metgraphics/cmap"
)

// RelativeHumidityNWS returns the relative humidity table (%).
func RelativeHumidityNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := rgb(
		[3]uint8{99, 68, 46}, [3]uint8{125, 84, 54}, [3]uint8{153, 98, 62}, [3]uint8{168, 115, 79},
		[3]uint8{181, 137, 99}, [3]uint8{206, 178, 148}, [3]uint8{218, 198, 178}, [3]uint8{221, 215, 198},
		[3]uint8{185, 199, 170}, [3]uint8{170, 193, 156}, [3]uint8{135, 187, 138}, [3]uint8{108, 165, 145},
		[3]uint8{79, 105, 143}, [3]uint8{79, 98, 143}, [3]uint8{157, 24, 177}, [3]uint8{121, 20, 97})
	def := []float64{0, 1, 5, 10, 20, 30, 40, 50, 60, 65, 70, 75, 80, 85, 90, 99}
	return discrete("relative_humidity_nws", or(pos, def), colors, cmap.Max)
}

// CloudCoverNWS returns the continuous total cloud cover colormap (%).
func CloudCoverNWS(pos []float64) (*cmap.Colormap, error) {
	colors := hex("#000000", "#3C3C3C", "#7C7C7C", "#BFBFBF", "#E3E3E3", "#FFFFFF")
	return segmented("cloud_cover_nws", colors, or(pos, []float64{0, 25, 50, 75, 90, 100}))
}

// VisibilityNWS returns the visibility table (km).
func VisibilityNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#31007E", "#0032B3", "#007DFF", "#00BDFF",
		"#FF2290", "#FFAED7", "#FFFF00", "#FF9800",
		"#17D78B", "#2AA92A", "#53FF00")
	def := []float64{0, 0.05, 0.2, 0.5, 1, 2.5, 5, 10, 20, 30, 40}
	return discrete("visibility_nws", or(pos, def), colors, cmap.Max)
}

// MSLPNWS returns the mean sea level pressure table, 940 to 1065 hPa
// every 2.5 hPa.
func MSLPNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#FD90EB", "#EB78E5", "#EF53E0", "#F11FD3", "#F11FD3", "#A20E9B",
		"#880576", "#6D0258", "#5F0853", "#2A0DA8", "#2F1AA7", "#3D27B4",
		"#3F3CB6", "#6D5CDE", "#A28CF9", "#C1B3FF", "#DDDCFE", "#1861DB",
		"#206CE5", "#2484F4", "#52A5EE", "#91D4FF", "#B2EFF8", "#DEFEFF",
		"#C9FDBD", "#91F78B", "#53ED54", "#1DB31E", "#0CA104", "#FFF9A4",
		"#FFE27F", "#FAC235", "#FF9D04", "#FF5E00", "#F83302", "#E01304",
		"#A20200", "#603329", "#8C6653", "#B18981", "#DDC0B3", "#F8A3A2",
		"#DD6663", "#CA3C3B", "#A1241D", "#6C6F6D", "#8A8A8A", "#AAAAAA",
		"#C5C5C5", "#D5D5D5", "#E7E3E4")
	return discrete("mslp_nws", or(pos, cmap.Arange(940, 1067.5, 2.5)), colors, cmap.Max)
}

// HeightNWS returns the geopotential height table (dagpm). With nil
// pos the 44 levels are start, start+step, ...
func HeightNWS(start, step float64, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#333637", "#50514C", "#676467", "#888888", "#9F9F9F",
		"#B3ADB3", "#C5C5C3", "#DBDBE6", "#B2AEE5", "#7C70D2",
		"#6E60CF", "#483FB8", "#32289A", "#2C6CDF", "#347DE2",
		"#4493EB", "#54A1EB", "#95CFF5", "#B2F8B0", "#95F398",
		"#56EC6B", "#2EB146", "#249D3B", "#624039", "#74524A",
		"#89645C", "#9A736A", "#AE8781", "#C49C94", "#DDBBB3",
		"#FDF9B3", "#FDE788", "#FDBD5C", "#FD9F43", "#FB6234",
		"#FB3D2D", "#DD2826", "#BB1B21", "#9F181D", "#F29F9F",
		"#E38183", "#D55B58", "#CF5251", "#C54043")
	return discrete("height_nws", or(pos, steps(start, step, len(colors))), colors, cmap.Max)
}

// VerticalVelocityNWS returns the vertical velocity table (Pa/s),
// reds for ascent and blues for descent.
func VerticalVelocityNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#9D0001", "#C90101", "#F10202", "#FF3333", "#FF8585",
		"#FFBABA", "#FEDDDD", "#FFFFFF", "#E1E1FF", "#BABAFF",
		"#8484FF", "#2C2CF7", "#0404F1", "#0101C8", "#020299")
	def := []float64{-30, -20, -10, -5, -2.5, -1, -0.5, 0.5, 1, 2.5, 5, 10, 20, 30}
	return discrete("vertical_velocity_nws", or(pos, def), colors, cmap.Both)
}

// PrecipitableWaterNWS returns the precipitable water table (mm).
func PrecipitableWaterNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#C5C5C5", "#B5B5B5", "#A1A1A1", "#8B8B8B", "#787878",
		"#636363", "#505050", "#3B3B3B", "#5B431F", "#6D583B",
		"#866441", "#9C7B46", "#B28C5D", "#CA9D64", "#D8AC7D",
		"#B9B5FF", "#A7A8E1", "#989ACD", "#8686C6", "#6B6CA4",
		"#5A5B91", "#474880", "#016362", "#1D6C59", "#2C774E",
		"#398545", "#589A39", "#6FA720", "#8BB41A", "#A29E54",
		"#AEAD43", "#C4C732", "#D9DB18", "#F0EC11", "#E96F57",
		"#C55645", "#B04035", "#9D2527", "#8A121C", "#7B0007",
		"#7A0076", "#8E0096", "#AE00B8", "#C300C0", "#E200E1",
		"#A002DB", "#7901DD", "#6201DE", "#3C00DC", "#2500D9",
		"#0028DD", "#004ED6", "#0571E0", "#0C98E7", "#02B8DD")
	def := cmap.Concat(cmap.Arange(0, 25, 1), cmap.Arange(26, 86, 2))
	// 55 colors over 55 levels leave room for the upper extension only.
	return discrete("precipitable_water_nws", or(pos, def), colors, cmap.Max)
}

// SpecificHumidityNWS returns the continuous specific humidity
// colormap (g/kg).
func SpecificHumidityNWS(pos []float64) (*cmap.Colormap, error) {
	colors := hex(
		"#FFFFB3", "#463F35", "#F3F1D7", "#E5F4E6", "#124E19",
		"#62A1AC", "#1A2F2E", "#656596", "#302361", "#D3B8DA",
		"#845574")
	def := []float64{0, 4, 8, 8, 12, 12, 16, 16, 20, 20, 24}
	return segmented("specific_humidity_nws", colors, or(pos, def))
}

// CapeNWS returns the continuous convective available potential
// energy colormap (J/kg).
func CapeNWS(pos []float64) (*cmap.Colormap, error) {
	colors := hex(
		"#FFFFFF", "#1E68E4", "#479BEC", "#22FBFB", "#1CD78B",
		"#1CAE30", "#52C636", "#BAEA41", "#FEFF4A", "#FA8D2C",
		"#FD3B4B", "#A40F4D", "#5A0B76", "#F1EBF5")
	def := []float64{0, 100, 150, 500, 900, 1300, 1500, 1800,
		2000, 2850, 3600, 3900, 4200, 4950}
	return segmented("cape_nws", colors, or(pos, def))
}

// ReflectNCDC returns the NCDC radar reflectivity colormap.
func ReflectNCDC() (*cmap.Colormap, error) {
	pos := []float64{0, 0.0714, 0.1429, 0.2143, 0.2857, 0.3571, 0.4286,
		0.5, 0.5714, 0.6429, 0.7143, 0.7857, 0.8571, 0.9286, 1}
	r := []float64{0, 0, 0, 0, 0, 0, 1, 0.906, 1, 1, 0.839, 0.753, 1, 0.6, 0.923}
	g := []float64{0.925, 0.627, 0, 1, 0.784, 0.565, 1, 0.753, 0.565, 0, 0, 0, 0, 0.333, 0.923}
	b := []float64{0.925, 0.965, 0.965, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0.788, 0.923}
	rows := make([][3]float64, len(pos))
	for i := range rows {
		rows[i] = [3]float64{r[i], g[i], b[i]}
	}
	return cmap.FromList("reflect_ncdc", cmap.RGBFloat(rows...), pos, cmap.DefaultN)
}
