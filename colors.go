package dataviz

type Palette []string

var Category10 Palette

const (
	ColorPositive = "#2ca02c"
	ColorNegative = "#d62728"
	ColorResult   = "#4682b4"
	ColorBar      = "#4682b4"
	ColorAxis     = "#cccccc"
	ColorText     = "#000000"
	ColorInner    = "#ffffff"

	ColorBandGreen  = "#eeeeee"
	ColorBandYellow = "#dddddd"
	ColorBandRed    = "#cccccc"
	ColorPlan       = "#b0c4de"
	ColorCurrent    = "#4682b4"
	ColorLast       = "#000000"

	ColorPlaceholder = "#f2f2f2"
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ColorBar
	}
	return p[i%len(p)]
}

// Keyed hands out colors by name: the same key always gets the same color,
// new keys get the next color of the palette.
type Keyed struct {
	palette Palette
	keys    map[string]int
}

func (p Palette) Keyed() *Keyed {
	return &Keyed{
		palette: p,
		keys:    make(map[string]int),
	}
}

func (k *Keyed) Color(key string) string {
	i, ok := k.keys[key]
	if !ok {
		i = len(k.keys)
		k.keys[key] = i
	}
	return k.palette.At(i)
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
