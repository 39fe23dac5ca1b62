package stref

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidcore/kernel/geom"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	normal := geom.Vec3{X: 0, Y: 0, Z: 1}
	rec := Record{
		ExpectedType:    ExpectedFace,
		OriginFeatureID: "feature-42",
		LocalSelector: LocalSelector{
			Kind: "extrude.topCap",
			Data: map[string]interface{}{"profileEdgeIndex": 2},
		},
		Fingerprint: Fingerprint{
			Centroid: geom.Vec3{X: 1.5, Y: -2.25, Z: 0},
			Size:     12.5,
			Normal:   &normal,
		},
	}

	s, err := Encode(rec)
	require.NoError(t, err)
	assert.True(t, len(s) > len(wirePrefix))

	got, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, rec.ExpectedType, got.ExpectedType)
	assert.Equal(t, rec.OriginFeatureID, got.OriginFeatureID)
	assert.Equal(t, rec.LocalSelector.Kind, got.LocalSelector.Kind)
	assert.InDelta(t, rec.Fingerprint.Centroid.X, got.Fingerprint.Centroid.X, 1e-12)
	assert.InDelta(t, rec.Fingerprint.Size, got.Fingerprint.Size, 1e-12)
	require.NotNil(t, got.Fingerprint.Normal)
	assert.InDelta(t, 1.0, got.Fingerprint.Normal.Z, 1e-12)
}

func TestEncodeDeterministic(t *testing.T) {
	rec := Record{
		ExpectedType:    ExpectedEdge,
		OriginFeatureID: "f1",
		LocalSelector:   LocalSelector{Kind: "extrude.side", Data: map[string]interface{}{"b": 1, "a": "x"}},
		Fingerprint:     Fingerprint{Centroid: geom.Vec3{X: 1, Y: 2, Z: 3}, Size: 4},
	}
	a, err := Encode(rec)
	require.NoError(t, err)
	b, err := Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeRejectsNaN(t *testing.T) {
	rec := Record{
		ExpectedType:  ExpectedFace,
		LocalSelector: LocalSelector{Kind: "face.unknown"},
		Fingerprint:   Fingerprint{Size: math.NaN()},
	}
	_, err := Encode(rec)
	require.Error(t, err)
}

func TestDecodeRejectsBadPrefix(t *testing.T) {
	_, err := Decode("not-a-stref")
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestDecodeRejectsMalformedPayload(t *testing.T) {
	_, err := Decode(wirePrefix + "!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeRejectsPayloadWithoutVersion(t *testing.T) {
	_, err := Decode(wirePrefix + "e30") // base64url for "{}"
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestReferenceSetPreferredOrder(t *testing.T) {
	rs := NewReferenceSet([]string{"a", "b", "c"}, 1)
	assert.Equal(t, 1, rs.Preferred)
	assert.Len(t, rs.Candidates, 3)
}

func TestReferenceSetTruncatesToMax(t *testing.T) {
	rs := NewReferenceSet([]string{"a", "b", "c", "d", "e", "f"}, 0)
	assert.Len(t, rs.Candidates, MaxCandidates)
}
