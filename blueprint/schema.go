package blueprint

// rawBlueprint mirrors the top-level shape of a decompressed blueprint
// string: a single "blueprint" object holding the entity array.
type rawBlueprint struct {
	Blueprint struct {
		Entities []rawEntity `json:"entities"`
	} `json:"blueprint"`
}

// rawEntity mirrors one element of blueprint.entities. Fields are a union
// of everything belts, undergrounds, splitters, inserters and assemblers
// carry; each entity kind only populates the subset it needs.
type rawEntity struct {
	EntityNumber int         `json:"entity_number"`
	Name         string      `json:"name"`
	Position     rawPosition `json:"position"`
	Direction    int         `json:"direction"`

	Type           string `json:"type"`            // underground belts: "input" | "output"
	InputPriority  string `json:"input_priority"`  // splitters: "left" | "right" | "" (none)
	OutputPriority string `json:"output_priority"` // splitters: "left" | "right" | "" (none)
}

type rawPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
