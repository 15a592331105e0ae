package transform

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (StateTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set", createSetParameter)
	registry.Register("adjust", createAdjustParameter)
	registry.Register("scale", createScaleParameter)
	registry.Register("set_overhead", createSetOverhead)
	registry.Register("scale_overheads", createScaleOverheads)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (StateTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_overhead:id=v3,field=unit_cost,value=95"
func (r *TransformRegistry) ParseTransformSpec(spec string) (StateTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	params, err := parsePairs(parts[1])
	if err != nil {
		return nil, err
	}

	return r.Create(name, params)
}

// ParseAssignments turns "markup_percent=20,weekly_gross=1100" into SetParameter transforms,
// in the order written.
func ParseAssignments(s string) ([]StateTransform, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var transforms []StateTransform
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid assignment, expected 'key=value', got: %s", pair)
		}
		t, err := createSetParameter(map[string]string{
			"key":   strings.TrimSpace(kv[0]),
			"value": strings.TrimSpace(kv[1]),
		})
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func parsePairs(paramsStr string) (map[string]string, error) {
	params := make(map[string]string)
	paramsStr = strings.TrimSpace(paramsStr)
	if paramsStr == "" {
		return params, nil
	}
	for _, paramPair := range strings.Split(paramsStr, ",") {
		kv := strings.SplitN(paramPair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
		}
		params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return params, nil
}

// Factory functions for each transform

func requireKey(name string, params map[string]string) (domain.ParameterKey, error) {
	keyStr, ok := params["key"]
	if !ok {
		return "", fmt.Errorf("%s requires 'key' parameter", name)
	}
	key := domain.ParameterKey(keyStr)
	if _, err := domain.LookupParameter(key); err != nil {
		return "", fmt.Errorf("%s: %w (known: %s)", name, err, strings.Join(domain.ParameterKeys(), ", "))
	}
	return key, nil
}

func requireFloat(name, param string, params map[string]string) (float64, error) {
	valueStr, ok := params[param]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", name, param)
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", param, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid %s value: %s is not a finite number", param, valueStr)
	}
	return value, nil
}

func createSetParameter(params map[string]string) (StateTransform, error) {
	key, err := requireKey("set", params)
	if err != nil {
		return nil, err
	}
	value, err := requireFloat("set", "value", params)
	if err != nil {
		return nil, err
	}
	return &SetParameter{Key: key, Value: value}, nil
}

func createAdjustParameter(params map[string]string) (StateTransform, error) {
	key, err := requireKey("adjust", params)
	if err != nil {
		return nil, err
	}
	delta, err := requireFloat("adjust", "delta", params)
	if err != nil {
		return nil, err
	}
	return &AdjustParameter{Key: key, Delta: delta}, nil
}

func createScaleParameter(params map[string]string) (StateTransform, error) {
	key, err := requireKey("scale", params)
	if err != nil {
		return nil, err
	}
	factor, err := requireFloat("scale", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleParameter{Key: key, Factor: factor}, nil
}

func createSetOverhead(params map[string]string) (StateTransform, error) {
	id, ok := params["id"]
	if !ok {
		return nil, fmt.Errorf("set_overhead requires 'id' parameter")
	}
	field, ok := params["field"]
	if !ok {
		return nil, fmt.Errorf("set_overhead requires 'field' parameter")
	}
	value, err := requireFloat("set_overhead", "value", params)
	if err != nil {
		return nil, err
	}
	return &SetOverhead{ID: id, Field: domain.OverheadField(field), Value: value}, nil
}

func createScaleOverheads(params map[string]string) (StateTransform, error) {
	factor, err := requireFloat("scale_overheads", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleOverheads{Factor: factor}, nil
}
