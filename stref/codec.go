package stref

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/solidcore/kernel/geom"
)

const wirePrefix = "stref:v1:"

var (
	// ErrUnknownVersion is returned when a string does not carry the
	// "stref:v1:" prefix this package knows how to decode.
	ErrUnknownVersion = errors.New("stref: unknown or missing version prefix")

	// ErrMissingField is returned when a decoded payload lacks a
	// required top-level field.
	ErrMissingField = errors.New("stref: missing required field")

	// ErrMalformed is returned when the base64 or JSON payload itself
	// cannot be parsed.
	ErrMalformed = errors.New("stref: malformed payload")
)

// tree renders r as the generic JSON-like value canonicalize expects.
func (r Record) tree() map[string]interface{} {
	data := make(map[string]interface{}, len(r.LocalSelector.Data))
	for k, v := range r.LocalSelector.Data {
		data[k] = v
	}
	selector := map[string]interface{}{
		"kind": r.LocalSelector.Kind,
		"data": data,
	}
	fp := map[string]interface{}{
		"centroid": []interface{}{r.Fingerprint.Centroid.X, r.Fingerprint.Centroid.Y, r.Fingerprint.Centroid.Z},
		"size":     r.Fingerprint.Size,
	}
	if r.Fingerprint.Normal != nil {
		n := r.Fingerprint.Normal
		fp["normal"] = []interface{}{n.X, n.Y, n.Z}
	}
	return map[string]interface{}{
		"version":         Version,
		"expectedType":    string(r.ExpectedType),
		"originFeatureId": r.OriginFeatureID,
		"localSelector":   selector,
		"fingerprint":     fp,
	}
}

// Encode renders r as a "stref:v1:..." wire string. It fails only when
// r's fingerprint or selector data contains a non-finite float
// (ErrNonFinite) or an unencodable value type.
func Encode(r Record) (string, error) {
	body, err := canonicalize(r.tree())
	if err != nil {
		return "", err
	}
	return wirePrefix + base64.RawURLEncoding.EncodeToString([]byte(body)), nil
}

// Decode parses a "stref:v1:..." wire string back into a Record,
// strictly validating that every required field is present.
func Decode(s string) (Record, error) {
	if !strings.HasPrefix(s, wirePrefix) {
		return Record{}, ErrUnknownVersion
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(s, wirePrefix))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	verF, ok := m["version"].(float64)
	if !ok || int(verF) != Version {
		return Record{}, ErrUnknownVersion
	}
	expectedType, ok := m["expectedType"].(string)
	if !ok || expectedType == "" {
		return Record{}, fmt.Errorf("%w: expectedType", ErrMissingField)
	}
	originFeatureID, ok := m["originFeatureId"].(string)
	if !ok {
		return Record{}, fmt.Errorf("%w: originFeatureId", ErrMissingField)
	}
	selRaw, ok := m["localSelector"].(map[string]interface{})
	if !ok {
		return Record{}, fmt.Errorf("%w: localSelector", ErrMissingField)
	}
	kind, ok := selRaw["kind"].(string)
	if !ok || kind == "" {
		return Record{}, fmt.Errorf("%w: localSelector.kind", ErrMissingField)
	}
	data, _ := selRaw["data"].(map[string]interface{})
	if data == nil {
		data = map[string]interface{}{}
	}

	var fp Fingerprint
	fpRaw, ok := m["fingerprint"].(map[string]interface{})
	if !ok {
		return Record{}, fmt.Errorf("%w: fingerprint", ErrMissingField)
	}
	centroidRaw, ok := fpRaw["centroid"].([]interface{})
	if !ok || len(centroidRaw) != 3 {
		return Record{}, fmt.Errorf("%w: fingerprint.centroid", ErrMissingField)
	}
	fp.Centroid = geom.Vec3{X: toFloat(centroidRaw[0]), Y: toFloat(centroidRaw[1]), Z: toFloat(centroidRaw[2])}
	size, ok := fpRaw["size"].(float64)
	if !ok {
		return Record{}, fmt.Errorf("%w: fingerprint.size", ErrMissingField)
	}
	fp.Size = size
	if normalRaw, ok := fpRaw["normal"].([]interface{}); ok && len(normalRaw) == 3 {
		n := geom.Vec3{X: toFloat(normalRaw[0]), Y: toFloat(normalRaw[1]), Z: toFloat(normalRaw[2])}
		fp.Normal = &n
	}

	return Record{
		ExpectedType:    ExpectedType(expectedType),
		OriginFeatureID: originFeatureID,
		LocalSelector:   LocalSelector{Kind: kind, Data: data},
		Fingerprint:     fp,
	}, nil
}

func toFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
