// Package obsgen generates the observation-power counting questions and
// their SVG images.
package obsgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abaqira/guidebook/internal/questions"
)

const (
	CategoryID  = "observation-power"
	ImageDir    = "observation-images"
	DefaultSeed = 2026
	DefaultSize = 200

	canvasWidth  = 960
	canvasHeight = 600
	gridCols     = 12
	gridRows     = 8
	marginX      = 52
	marginY      = 70
)

// Difficulty labels.
const (
	Easy   = "سهل"
	Medium = "متوسط"
	Hard   = "صعب"
)

// ErrDistribution is returned when a generated set fails its self-checks.
var ErrDistribution = errors.New("unexpected distribution")

type countRange struct{ min, max int }

// ranges returns the target and total object count ranges for a difficulty.
func ranges(difficulty string) (target, total countRange) {
	switch difficulty {
	case Easy:
		return countRange{4, 7}, countRange{16, 22}
	case Medium:
		return countRange{8, 12}, countRange{24, 30}
	default:
		return countRange{13, 18}, countRange{32, 40}
	}
}

// Options controls generation.
type Options struct {
	Seed  uint64
	Count int
}

// Result is a generated category plus its images keyed by file name.
type Result struct {
	Category questions.Category
	Images   map[string]string
}

// Generate builds opts.Count questions deterministically from opts.Seed.
func Generate(opts Options) (*Result, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if opts.Count > 999 {
		return nil, fmt.Errorf("count must be at most 999, got %d", opts.Count)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	difficulties := difficultyPlan(opts.Count)
	rng.Shuffle(len(difficulties), func(i, j int) {
		difficulties[i], difficulties[j] = difficulties[j], difficulties[i]
	})

	res := &Result{
		Category: questions.Category{
			ID:          CategoryID,
			Title:       "قوة الملاحظة",
			Description: fmt.Sprintf("%d سؤال بصري بصور متنوعة (نجوم، مثلثات، وجوه، قلوب، أسهم وغيرها) مع إجابات عدّ دقيقة.", opts.Count),
			Questions:   make([]questions.QuestionItem, 0, opts.Count),
		},
		Images: make(map[string]string, opts.Count),
	}

	for i := 1; i <= opts.Count; i++ {
		difficulty := difficulties[i-1]
		target, total := ranges(difficulty)
		shape := Shapes[(i-1)%len(Shapes)]

		targetCount := between(rng, target.min, target.max)
		totalCount := between(rng, max(total.min, targetCount+8), total.max)

		name := fmt.Sprintf("observation-%03d.svg", i)
		res.Images[name] = buildSVG(i, shape.Kind, targetCount, totalCount, rng)

		res.Category.Questions = append(res.Category.Questions, questions.QuestionItem{
			Question:   fmt.Sprintf("انظر إلى الصورة جيدًا: كم عدد %s؟", shape.Label),
			Answer:     fmt.Sprint(targetCount),
			Difficulty: difficulty,
			Subtopic:   "عدّ العناصر المتنوعة",
			Image:      "/" + ImageDir + "/" + name,
			ImageAlt:   fmt.Sprintf("صورة قوة الملاحظة رقم %d", i),
		})
	}

	if err := check(res.Category.Questions, difficultyPlan(opts.Count)); err != nil {
		return nil, err
	}
	return res, nil
}

// difficultyPlan splits count 60/30/10 between easy, medium and hard.
func difficultyPlan(count int) []string {
	easy := count * 60 / 100
	medium := count * 30 / 100
	hard := count - easy - medium

	plan := make([]string, 0, count)
	for range easy {
		plan = append(plan, Easy)
	}
	for range medium {
		plan = append(plan, Medium)
	}
	for range hard {
		plan = append(plan, Hard)
	}
	return plan
}

// check verifies the difficulty split and that every shape is asked about an
// even number of times (within one).
func check(items []questions.QuestionItem, plan []string) error {
	want := map[string]int{}
	for _, d := range plan {
		want[d]++
	}
	got := map[string]int{}
	types := map[string]int{}
	for _, q := range items {
		got[q.Difficulty]++
		label := strings.TrimSuffix(q.Question[strings.Index(q.Question, "عدد ")+len("عدد "):], "؟")
		types[label]++
	}
	for d, n := range want {
		if got[d] != n {
			return fmt.Errorf("%w: difficulty %s: got %d, want %d", ErrDistribution, d, got[d], n)
		}
	}

	lo, hi := len(items), 0
	for _, s := range Shapes {
		lo = min(lo, types[s.Label])
		hi = max(hi, types[s.Label])
	}
	if len(items) >= len(Shapes) && hi-lo > 1 {
		return fmt.Errorf("%w: shape counts range from %d to %d", ErrDistribution, lo, hi)
	}
	return nil
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func buildSVG(index int, target string, targetCount, totalCount int, rng *rand.Rand) string {
	stepX := float64(canvasWidth-2*marginX) / float64(gridCols-1)
	stepY := float64(canvasHeight-2*marginY) / float64(gridRows-1)

	type point struct{ x, y float64 }
	grid := make([]point, 0, gridCols*gridRows)
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			grid = append(grid, point{marginX + float64(c)*stepX, marginY + float64(r)*stepY})
		}
	}

	totalCount = min(totalCount, len(grid))
	perm := rng.Perm(len(grid))[:totalCount]
	targets := make(map[int]bool, targetCount)
	for _, i := range rng.Perm(totalCount)[:targetCount] {
		targets[i] = true
	}

	var distractors []string
	for _, s := range Shapes {
		if s.Kind != target {
			distractors = append(distractors, s.Kind)
		}
	}
	rng.Shuffle(len(distractors), func(i, j int) { distractors[i], distractors[j] = distractors[j], distractors[i] })
	active := distractors[:between(rng, 3, 6)]

	var objects strings.Builder
	for i, gi := range perm {
		p := grid[gi]
		kind := target
		if !targets[i] {
			kind = active[rng.IntN(len(active))]
		}
		color := palette[rng.IntN(len(palette))]
		size := uniform(rng, 28, 42)
		dx, dy := uniform(rng, -8, 8), uniform(rng, -8, 8)
		rotation := uniform(rng, -28, 28)
		if kind == "smile" || kind == "moon" {
			rotation = uniform(rng, -8, 8)
		}
		if i > 0 {
			objects.WriteString("\n    ")
		}
		fmt.Fprintf(&objects, `<g transform="translate(%.2f %.2f) rotate(%.2f)">%s</g>`,
			p.x+dx, p.y+dy, rotation, shapeSVG(kind, size, color))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <defs>
    <linearGradient id="bg%d" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" stop-color="#0F172A" />
      <stop offset="100%%" stop-color="#1D4ED8" />
    </linearGradient>
    <filter id="shadow%d" x="-20%%" y="-20%%" width="140%%" height="140%%">
      <feDropShadow dx="0" dy="2" stdDeviation="1.8" flood-color="rgba(0,0,0,0.36)" />
    </filter>
  </defs>

  <rect width="%d" height="%d" fill="url(#bg%d)" />
  <rect x="24" y="24" width="%d" height="%d" rx="20" fill="rgba(255,255,255,0.045)" stroke="rgba(255,255,255,0.22)" />
  <g filter="url(#shadow%d)">
    %s
  </g>
</svg>
`, canvasWidth, canvasHeight, canvasWidth, canvasHeight,
		index, index,
		canvasWidth, canvasHeight, index,
		canvasWidth-48, canvasHeight-48,
		index, objects.String())
	return b.String()
}
