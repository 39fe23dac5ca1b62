// Package feature builds BREP bodies from a solved profile: extrude
// (translate along the profile plane's normal) and revolve (sweep
// about an axis entity). Both populate a history.Record as they go, so
// the caps and side faces they create are immediately traceable back
// to the sketch entity that produced them.
package feature
