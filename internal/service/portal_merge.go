package service

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/samber/lo"
)

// mergeLayer merges src over dst in place. Set settings of src win, null
// included; absent settings fall through to dst, and sections merge field by
// field.
//
// Values are copied rather than deep-cloned, so dst may alias src after the
// call. Callers clone the final result.
func mergeLayer(dst *models.PortalConfig, src models.PortalConfig) error {
	err := mergo.Merge(dst, src,
		mergo.WithOverride,
		mergo.WithoutDereference,
		mergo.WithTransformers(layerTransformers{}),
	)
	if err != nil {
		return fmt.Errorf("error merging portal %q: %w", src.PortalID, err)
	}
	return nil
}

type presence interface {
	IsSet() bool
}

var (
	presenceType      = reflect.TypeFor[presence]()
	optionalQueryType = reflect.TypeFor[models.Optional[models.Query]]()
)

// layerTransformers keys every optional setting on presence instead of
// mergo's notion of an empty value.
type layerTransformers struct{}

func (layerTransformers) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	switch {
	case t == optionalQueryType:
		return mergeQueryValues
	case t.Implements(presenceType):
		return replaceIfSet
	}
	return nil
}

// replaceIfSet replaces dst whenever src was present in its layer. An explicit
// null, false, "" or empty list all override.
func replaceIfSet(dst, src reflect.Value) error {
	if !dst.CanSet() || !src.Interface().(presence).IsSet() {
		return nil
	}
	dst.Set(src)
	return nil
}

// mergeQueryValues merges two queries key by key when both hold one. A null
// query on the higher layer replaces the lower one.
func mergeQueryValues(dst, src reflect.Value) error {
	higher := src.Interface().(models.Optional[models.Query])
	if !dst.CanSet() || !higher.IsSet() {
		return nil
	}

	lower := dst.Interface().(models.Optional[models.Query])
	lowerQuery, lowerOK := lower.Get()
	higherQuery, higherOK := higher.Get()
	if lowerOK && higherOK {
		dst.Set(reflect.ValueOf(models.Some(mergeQuery(lowerQuery, higherQuery))))
		return nil
	}

	dst.Set(src)
	return nil
}

// mergeQuery returns a new query holding lower overlaid by higher. A key
// present in higher always wins, even with a nil value; nested objects are
// merged key by key.
func mergeQuery(lower, higher models.Query) models.Query {
	return mergeQueryMaps(lower, higher)
}

func mergeQueryMaps(lower, higher map[string]any) map[string]any {
	out := lo.Assign(lower)
	for key, value := range higher {
		lowerMap, lowerIsMap := out[key].(map[string]any)
		higherMap, higherIsMap := value.(map[string]any)
		if lowerIsMap && higherIsMap {
			out[key] = mergeQueryMaps(lowerMap, higherMap)
			continue
		}
		out[key] = value
	}
	return out
}
