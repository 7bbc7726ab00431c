package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a scene.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// IntParameter builds an integer Parameter.
func IntParameter(key, label string, value int, description string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value), Description: description}
}

// FloatParameter builds a floating-point Parameter.
func FloatParameter(key, label string, value float64, description string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64), Description: description}
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a scene.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds the parameter with the given key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes a snapshot of a scene's current tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ConfigInt parses cfg[key] as an int accepted by valid, falling back to def.
func ConfigInt(cfg map[string]string, key string, def int, valid func(int) bool) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || (valid != nil && !valid(parsed)) {
		return def
	}
	return parsed
}

// ConfigFloat parses cfg[key] as a float64 accepted by valid, falling back to def.
func ConfigFloat(cfg map[string]string, key string, def float64, valid func(float64) bool) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || (valid != nil && !valid(parsed)) {
		return def
	}
	return parsed
}
