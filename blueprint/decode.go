package blueprint

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/geom"
	"github.com/katalvlaran/beltbalance/verrors"
)

// pending carries a decoded entity alongside its still-fractional
// position, so splitter snapping and axis normalization can operate in
// float space exactly once, before truncating to the integer grid.
type pending struct {
	ent  entities.Entity
	x, y float64
}

// Decode turns an exported Factorio blueprint string into the entities the
// front-end consumes. Entities whose name this package does not recognize
// are dropped silently; everything else is returned with integer
// positions and the internal y-axis convention (north increases y).
func Decode(blueprintString string) ([]entities.Entity, error) {
	if blueprintString == "" {
		return nil, fmt.Errorf("blueprint: %w", verrors.ErrEmptyBlueprintString)
	}

	raw, err := decompress(blueprintString)
	if err != nil {
		return nil, fmt.Errorf("blueprint: %w", err)
	}

	var doc rawBlueprint
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("blueprint: %w: %v", verrors.ErrMalformedJSON, err)
	}
	if doc.Blueprint.Entities == nil {
		return nil, fmt.Errorf("blueprint: %w", verrors.ErrNoEntitiesKey)
	}

	seen := make(map[int]struct{}, len(doc.Blueprint.Entities))
	for _, re := range doc.Blueprint.Entities {
		if _, dup := seen[re.EntityNumber]; dup {
			return nil, fmt.Errorf("blueprint: %w: %d", verrors.ErrDuplicateEntityNumber, re.EntityNumber)
		}
		seen[re.EntityNumber] = struct{}{}
	}

	pendings := make([]pending, 0, len(doc.Blueprint.Entities))
	for _, re := range doc.Blueprint.Entities {
		ent, ok := decodeEntity(re)
		if !ok {
			continue
		}
		pendings = append(pendings, pending{ent: ent, x: re.Position.X, y: re.Position.Y})
	}

	snapSplittersToGrid(pendings)

	return normalize(pendings), nil
}

// decompress reverses the blueprint string's encoding: drop the leading
// version byte, base64-decode the remainder, then zlib-inflate it.
func decompress(blueprintString string) ([]byte, error) {
	if len(blueprintString) < 1 {
		return nil, verrors.ErrBadVersionByte
	}

	decoded, err := base64.StdEncoding.DecodeString(blueprintString[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrBase64Decode, err)
	}

	r, err := zlib.NewReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrZlibInflate, err)
	}
	defer r.Close()

	inflated, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrZlibInflate, err)
	}
	return inflated, nil
}

// decodeEntity maps one raw JSON entity to its entities.Entity variant,
// leaving Position zeroed — callers fill it in once float positions have
// been snapped and normalized. The second return is false when re.Name is
// not one this package models.
func decodeEntity(re rawEntity) (entities.Entity, bool) {
	base := entities.BaseEntity{
		ID:        entities.EntityId(re.EntityNumber),
		Direction: geom.Direction(re.Direction),
	}

	switch {
	case isSplitter(re.Name):
		base.Throughput, _ = beltTierThroughput(re.Name)
		return entities.Splitter{
			BaseEntity:     base,
			InputPriority:  decodePriority(re.InputPriority),
			OutputPriority: decodePriority(re.OutputPriority),
		}, true

	case isUnderground(re.Name):
		base.Throughput, _ = beltTierThroughput(re.Name)
		return entities.Underground{BaseEntity: base, Mode: decodeUndergroundMode(re.Type)}, true

	case isBelt(re.Name):
		base.Throughput, _ = beltTierThroughput(re.Name)
		return entities.Belt{BaseEntity: base}, true

	case isLongInserter(re.Name):
		return entities.LongInserter{BaseEntity: base}, true

	case isInserter(re.Name):
		return entities.Inserter{BaseEntity: base}, true

	case isAssembler(re.Name):
		return entities.Assembler{BaseEntity: base}, true

	default:
		return nil, false
	}
}

func decodePriority(raw string) entities.Priority {
	switch raw {
	case "left":
		return entities.PriorityLeft
	case "right":
		return entities.PriorityRight
	default:
		return entities.PriorityNone
	}
}

func decodeUndergroundMode(raw string) entities.UndergroundMode {
	if raw == "output" {
		return entities.UndergroundOutput
	}
	return entities.UndergroundInput
}

// snapSplittersToGrid undoes the 0.5-tile GUI offset Factorio stores
// splitter positions at. The shift direction is the entity's facing
// rotated one quarter-turn anticlockwise, with east/west swapped to
// account for the JSON y-axis pointing the opposite way from this
// module's internal convention.
func snapSplittersToGrid(pendings []pending) {
	for i := range pendings {
		s, ok := pendings[i].ent.(entities.Splitter)
		if !ok {
			continue
		}
		shiftDir := s.Direction.Rotate(geom.Anticlockwise, 1)
		switch shiftDir {
		case geom.East:
			shiftDir = geom.West
		case geom.West:
			shiftDir = geom.East
		}
		switch shiftDir {
		case geom.North:
			pendings[i].y += 0.5
		case geom.East:
			pendings[i].x += 0.5
		case geom.South:
			pendings[i].y -= 0.5
		case geom.West:
			pendings[i].x -= 0.5
		}
	}
}

// normalize truncates every pending position to the integer grid,
// translating so the minimum x and maximum y both land on zero, and
// un-inverting the y-axis (Factorio's JSON increases y downward; this
// module's geom.North increases y).
func normalize(pendings []pending) []entities.Entity {
	if len(pendings) == 0 {
		return nil
	}

	minX, maxY := pendings[0].x, pendings[0].y
	for _, p := range pendings[1:] {
		if p.x < minX {
			minX = p.x
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	out := make([]entities.Entity, len(pendings))
	for i, p := range pendings {
		base := p.ent.Base()
		base.Position = geom.Position{X: int(p.x - minX), Y: int(maxY - p.y)}
		out[i] = withBase(p.ent, base)
	}
	return out
}

// withBase returns e with its BaseEntity replaced by base, preserving the
// concrete variant and its non-base fields.
func withBase(e entities.Entity, base entities.BaseEntity) entities.Entity {
	switch v := e.(type) {
	case entities.Belt:
		v.BaseEntity = base
		return v
	case entities.Underground:
		v.BaseEntity = base
		return v
	case entities.Splitter:
		v.BaseEntity = base
		return v
	case entities.Inserter:
		v.BaseEntity = base
		return v
	case entities.LongInserter:
		v.BaseEntity = base
		return v
	case entities.Assembler:
		v.BaseEntity = base
		return v
	default:
		panic(fmt.Sprintf("blueprint: unknown entity variant %T", e))
	}
}
