package obsgen

import (
	"fmt"
	"math"
	"strings"
)

// Shape is one kind of countable object drawn in an observation image.
type Shape struct {
	Kind  string
	Label string // Arabic plural used in the question text
}

// Shapes lists the object types in question rotation order.
var Shapes = []Shape{
	{"star", "النجوم"},
	{"triangle", "المثلثات"},
	{"square", "المربعات"},
	{"circle", "الدوائر"},
	{"heart", "القلوب"},
	{"smile", "الوجوه المبتسمة"},
	{"arrow", "الأسهم"},
	{"diamond", "المعينات"},
	{"plus", "علامات الزائد"},
	{"moon", "الأهلة"},
}

var palette = []string{
	"#60A5FA", "#F87171", "#34D399", "#FBBF24", "#A78BFA",
	"#22D3EE", "#FB7185", "#F97316", "#4ADE80", "#C084FC",
}

const (
	outline    = `stroke="rgba(255,255,255,0.55)"`
	panelColor = "#0B1A34"
	inkColor   = "#1F2937"
)

func starPoints(outer, inner float64) string {
	pts := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		angle := -math.Pi/2 + float64(i)*(math.Pi/5)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, fmt.Sprintf("%.2f,%.2f", r*math.Cos(angle), r*math.Sin(angle)))
	}
	return strings.Join(pts, " ")
}

func polygon(points, color string, strokeWidth float64) string {
	return fmt.Sprintf(`<polygon points="%s" fill="%s" %s stroke-width="%.1f" />`, points, color, outline, strokeWidth)
}

// shapeSVG draws kind centred on the origin.
func shapeSVG(kind string, size float64, color string) string {
	half := size * 0.5

	switch kind {
	case "circle":
		return fmt.Sprintf(`<circle cx="0" cy="0" r="%.2f" fill="%s" %s stroke-width="1.4" />`, half, color, outline)

	case "square":
		side := size * 0.92
		hs := side / 2
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" %s stroke-width="1.4" />`,
			-hs, -hs, side, side, size*0.10, color, outline)

	case "triangle":
		h := size * 0.96
		return polygon(fmt.Sprintf("0,%.2f %.2f,%.2f %.2f,%.2f", -h*0.58, h*0.52, h*0.40, -h*0.52, h*0.40), color, 1.4)

	case "star":
		return polygon(starPoints(size*0.55, size*0.24), color, 1.4)

	case "diamond":
		return polygon(fmt.Sprintf("0,%.2f %.2f,0 0,%.2f %.2f,0", -half, half, half, -half), color, 1.4)

	case "plus":
		long := size * 0.95
		thick := size * 0.28
		hl, ht := long/2, thick/2
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" />`, -hl, -ht, long, thick, ht, color) +
			fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" />`, -ht, -hl, thick, long, ht, color)

	case "arrow":
		s := size
		pts := [][2]float64{
			{-0.50 * s, -0.18 * s}, {0.08 * s, -0.18 * s}, {0.08 * s, -0.38 * s},
			{0.55 * s, 0}, {0.08 * s, 0.38 * s}, {0.08 * s, 0.18 * s}, {-0.50 * s, 0.18 * s},
		}
		parts := make([]string, len(pts))
		for i, p := range pts {
			parts[i] = fmt.Sprintf("%.2f,%.2f", p[0], p[1])
		}
		return polygon(strings.Join(parts, " "), color, 1.2)

	case "heart":
		r := size * 0.24
		y := size * 0.08
		d := fmt.Sprintf("M 0 %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f C %.2f %.2f, %.2f %.2f, 0 %.2f Z",
			size*0.42,
			-size*0.55, size*0.05, -size*0.60, -size*0.35, -r, -y,
			-size*0.02, -size*0.42, size*0.02, -size*0.42, r, -y,
			size*0.60, -size*0.35, size*0.55, size*0.05, size*0.42)
		return fmt.Sprintf(`<path d="%s" fill="%s" %s stroke-width="1.2" />`, d, color, outline)

	case "moon":
		return fmt.Sprintf(`<circle cx="0" cy="0" r="%.2f" fill="%s" />`, size*0.50, color) +
			fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" />`, size*0.20, -size*0.02, size*0.42, panelColor)
	}

	// smile
	eyeR, eyeDX, eyeDY := size*0.08, size*0.18, -size*0.12
	mouthW, mouthY := size*0.38, size*0.14
	return fmt.Sprintf(`<circle cx="0" cy="0" r="%.2f" fill="%s" %s stroke-width="1.4" />`, half, color, outline) +
		fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" />`, -eyeDX, eyeDY, eyeR, inkColor) +
		fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" />`, eyeDX, eyeDY, eyeR, inkColor) +
		fmt.Sprintf(`<path d="M %.2f %.2f Q 0 %.2f %.2f %.2f" fill="none" stroke="%s" stroke-width="2.2" stroke-linecap="round" />`,
			-mouthW, mouthY, size*0.34, mouthW, mouthY, inkColor)
}
