package scene

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// sceneValidate checks struct tags of Definition and VertexDef.
var sceneValidate *validator.Validate

func init() {
	sceneValidate = validator.New()
	_ = sceneValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf coordinates.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate checks def for structural and referential errors:
//
//   - every vertex has a key, unique across the scene;
//   - positions and the label offset have at most three finite components;
//   - every neighbor, the start and the goal name a declared key.
//
// Absent or empty neighbor lists mean "no neighbors". Returns an error
// wrapping ErrInvalidScene, ErrDuplicateKey or ErrUnknownVertex.
func Validate(def *Definition) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidScene)
	}
	if err := sceneValidate.Struct(def); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	keys := make(map[string]int, len(def.Vertices))
	for i, v := range def.Vertices {
		if j, dup := keys[v.Key]; dup {
			return fmt.Errorf("%w: %q (vertices %d and %d)", ErrDuplicateKey, v.Key, j, i)
		}
		keys[v.Key] = i
	}
	for _, v := range def.Vertices {
		for _, n := range v.Neighbors {
			if _, ok := keys[n]; !ok {
				return fmt.Errorf("%w: %q listed as neighbor of %q", ErrUnknownVertex, n, v.Key)
			}
		}
	}
	if def.Start != "" {
		if _, ok := keys[def.Start]; !ok {
			return fmt.Errorf("%w: start %q", ErrUnknownVertex, def.Start)
		}
	}
	if def.Goal != "" {
		if _, ok := keys[def.Goal]; !ok {
			return fmt.Errorf("%w: goal %q", ErrUnknownVertex, def.Goal)
		}
	}

	return nil
}
