package catalog

// Icon is the fixed set of dimension glyphs. The theme maps each variant to
// a terminal rendering; the mapping is exhaustive, never name-based.
type Icon int

const (
	IconSpeech Icon = iota
	IconPen
	IconChecklist
	IconPeople
	IconPuzzle
	IconEar
	IconScale
	IconBolt
)

// Dimension is one entry of the fixed skill-dimension catalog. Dimensions
// only group challenge results for aggregation and display.
type Dimension struct {
	ID    string
	Label string
	Icon  Icon
	Color string // hex, consumed by the theme
}

// Dimensions is the fixed catalog, in display order.
var Dimensions = []Dimension{
	{ID: "communication", Label: "Communication", Icon: IconSpeech, Color: "#8B5CF6"},
	{ID: "professionalism", Label: "Professionalism", Icon: IconPen, Color: "#14B8A6"},
	{ID: "organization", Label: "Organization", Icon: IconChecklist, Color: "#F97316"},
	{ID: "empathy", Label: "Empathy", Icon: IconPeople, Color: "#EC4899"},
	{ID: "problem-solving", Label: "Problem Solving", Icon: IconPuzzle, Color: "#3B82F6"},
	{ID: "active-listening", Label: "Active Listening", Icon: IconEar, Color: "#22C55E"},
	{ID: "integrity", Label: "Integrity", Icon: IconScale, Color: "#EAB308"},
	{ID: "initiative", Label: "Initiative", Icon: IconBolt, Color: "#F43F5E"},
}

// DimensionByID looks up a dimension in the fixed catalog.
func DimensionByID(id string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}
