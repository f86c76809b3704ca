package orbital

import (
	"fmt"
	"strings"
	"time"
)

// BodyDescriptor names an element set for the multi-body adapter. The
// descriptor is owned by the caller: the engine never mutates it.
type BodyDescriptor struct {
	Name     string
	Elements *OrbitalElementSet
}

// String implements the Stringer interface.
func (b BodyDescriptor) String() string {
	return b.Name + " body"
}

// mustElements builds an element set from published constants and panics on
// invalid values. Only used for the static catalog below, which is validated
// by construction.
func mustElements(e, q, i, ω, Ω float64, T time.Time) *OrbitalElementSet {
	o, err := NewOrbitalElementSet(e, q, i, ω, Ω, T)
	if err != nil {
		panic(err)
	}
	return o
}

/* Definitions: published orbital elements, snapshot per session. */

// ThreeIAtlas is 3I/ATLAS (C/2025 N1), the third known interstellar object.
var ThreeIAtlas = BodyDescriptor{"3I/ATLAS", mustElements(
	6.13941774, 1.35638454, 175.11266, 128.01112, 322.16458,
	time.Date(2025, 10, 29, 11, 33, 16, 0, time.UTC))}

// Oumuamua is 1I/ʻOumuamua, the first known interstellar object.
var Oumuamua = BodyDescriptor{"1I/'Oumuamua", mustElements(
	1.20113, 0.255912, 122.742, 241.811, 24.597,
	time.Date(2017, 9, 9, 17, 2, 0, 0, time.UTC))}

// Borisov is 2I/Borisov, the first unambiguously interstellar comet.
var Borisov = BodyDescriptor{"2I/Borisov", mustElements(
	3.35648, 2.00658, 44.0526, 209.124, 308.149,
	time.Date(2019, 12, 8, 12, 21, 0, 0, time.UTC))}

// Catalog returns the name→element-set mapping of all bundled bodies, in the
// shape the multi-body adapter consumes.
func Catalog() map[string]*OrbitalElementSet {
	return map[string]*OrbitalElementSet{
		ThreeIAtlas.Name: ThreeIAtlas.Elements,
		Oumuamua.Name:    Oumuamua.Elements,
		Borisov.Name:     Borisov.Elements,
	}
}

// BodyFromString returns the bundled body from its name.
func BodyFromString(name string) (BodyDescriptor, error) {
	switch strings.ToLower(name) {
	case "3i/atlas", "3i", "atlas", "c/2025 n1":
		return ThreeIAtlas, nil
	case "1i/'oumuamua", "1i/oumuamua", "1i", "oumuamua":
		return Oumuamua, nil
	case "2i/borisov", "2i", "borisov":
		return Borisov, nil
	default:
		return BodyDescriptor{}, fmt.Errorf("undefined body '%s'", name)
	}
}
