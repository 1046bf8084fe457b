package tough

import (
	"fmt"
	"log/slog"
	"reflect"
)

// CheckParameters verifies a parameter mapping against a named block
// schema. Unknown keys are skipped with a warning; a value whose
// runtime category does not match the schema fails with a TypeError.
func CheckParameters(params map[string]interface{}, block string) error {
	schema, ok := Schemas[block]
	if !ok {
		return valueErrorf("unknown block '%s'", block)
	}
	return checkAgainst(params, schema, "")
}

// CheckParametersAt validates only the sub-mapping reached by
// following path from the root of a larger parameter tree. A missing
// path element is a structural error.
func CheckParametersAt(params map[string]interface{}, block string, path ...string) error {
	sub, loc, err := walk(params, path)
	if err != nil {
		return err
	}
	schema, ok := Schemas[block]
	if !ok {
		return valueErrorf("unknown block '%s'", block)
	}
	return checkAgainst(sub, schema, loc)
}

// CheckParameterList applies one block schema independently to each
// element of the container at path: either a list of mappings, or a
// mapping of mappings. For a mapping of mappings, the remaining path
// elements are followed inside each entry and entries missing a
// nested key are skipped rather than failed.
func CheckParameterList(params map[string]interface{}, block string, path ...string) error {
	if len(path) == 0 {
		return valueErrorf("parameter list validation requires a path")
	}
	schema, ok := Schemas[block]
	if !ok {
		return valueErrorf("unknown block '%s'", block)
	}
	head, loc := params[path[0]], fmt.Sprintf("['%s']", path[0])
	switch container := head.(type) {
	case map[string]interface{}:
		for name, entry := range container {
			sub, ok := entry.(map[string]interface{})
			if !ok {
				return &TypeError{Key: name, Path: loc, Expected: CatMapping.String()}
			}
			entryLoc := loc + fmt.Sprintf("['%s']", name)
			sub, entryLoc, found := descend(sub, entryLoc, path[1:])
			if !found {
				continue
			}
			if err := checkAgainst(sub, schema, entryLoc); err != nil {
				return err
			}
		}
	case []interface{}:
		for i, entry := range container {
			sub, ok := entry.(map[string]interface{})
			if !ok {
				return &TypeError{Key: fmt.Sprintf("%d", i), Path: loc, Expected: CatMapping.String()}
			}
			if err := checkAgainst(sub, schema, fmt.Sprintf("%s[%d]", loc, i)); err != nil {
				return err
			}
		}
	case nil:
		return valueErrorf("missing parameter key '%s'", path[0])
	default:
		return &TypeError{Key: path[0], Path: "", Expected: CatMapping.String()}
	}
	return nil
}

func checkAgainst(params map[string]interface{}, schema BlockSchema, loc string) error {
	for key, value := range params {
		cat, known := schema[key]
		if !known {
			if loc != "" {
				slog.Warn("unknown parameter key, skipping", "key", key, "in", loc)
			} else {
				slog.Warn("unknown parameter key, skipping", "key", key)
			}
			continue
		}
		if value == nil {
			continue
		}
		if !matchesCategory(value, cat) {
			return &TypeError{Key: key, Path: loc, Expected: cat.String()}
		}
	}
	return nil
}

// walk follows a key path through nested mappings, failing when a path
// element is absent or not a mapping.
func walk(params map[string]interface{}, path []string) (map[string]interface{}, string, error) {
	cur, loc := params, ""
	for _, key := range path {
		next, ok := cur[key]
		if !ok {
			return nil, "", valueErrorf("missing parameter key '%s'%s", key, locSuffix(loc))
		}
		sub, ok := next.(map[string]interface{})
		if !ok {
			return nil, "", &TypeError{Key: key, Path: loc, Expected: CatMapping.String()}
		}
		cur = sub
		loc += fmt.Sprintf("['%s']", key)
	}
	return cur, loc, nil
}

// descend is walk with skip-on-missing semantics, for homogeneous
// mapping-of-mapping containers where an entry may simply lack the
// nested block.
func descend(params map[string]interface{}, loc string, path []string) (map[string]interface{}, string, bool) {
	cur := params
	for _, key := range path {
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			return nil, "", false
		}
		cur = next
		loc += fmt.Sprintf("['%s']", key)
	}
	return cur, loc, true
}

func locSuffix(loc string) string {
	if loc == "" {
		return ""
	}
	return " in " + loc
}

// matchesCategory classifies a runtime value against a schema
// category. YAML and JSON decoding produce float64, int, string, bool,
// []interface{} and map[string]interface{}; typed numeric slices from
// in-process callers are accepted through reflection.
func matchesCategory(v interface{}, c Category) bool {
	switch c {
	case CatInt:
		return isInt(v)
	case CatFloat:
		return isFloat(v)
	case CatStr:
		_, ok := v.(string)
		return ok
	case CatBool:
		_, ok := v.(bool)
		return ok
	case CatStrInt:
		if _, ok := v.(string); ok {
			return true
		}
		return isInt(v)
	case CatArray:
		return isArray(v)
	case CatMapping:
		return reflect.ValueOf(v).Kind() == reflect.Map
	case CatScalar:
		return isInt(v) || isFloat(v)
	case CatScalarOrArray:
		return isInt(v) || isFloat(v) || isArray(v)
	case CatStrOrArray:
		if _, ok := v.(string); ok {
			return true
		}
		return isArray(v)
	}
	return false
}

func isInt(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64:
		return true
	}
	return false
}

func isFloat(v interface{}) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func isArray(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}
