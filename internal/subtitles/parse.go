package subtitles

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// parseJSON3Bytes parse un blob JSON ([]byte) et retourne la structure rawJSON3.
//
// Utilise json.Decoder en lecture depuis un bytes.Reader : les données sont
// déjà 100% en mémoire (le fetch est borné par maxBytes en amont).
// Pas de DisallowUnknownFields() : le json3 contient beaucoup de champs
// non mappés qu'on veut ignorer proprement.
func parseJSON3Bytes(b []byte) (rawJSON3, error) {
	var raw rawJSON3
	if len(b) == 0 {
		return raw, fmt.Errorf("parseJSON3Bytes: empty input")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("parseJSON3Bytes: decode error: %w", err)
	}
	return raw, nil
}

// SegmentsFromJSON3 décode un payload json3 et le transforme en Segments.
// C'est le seul point d'entrée exposé : la structure rawJSON3 reste interne.
func SegmentsFromJSON3(b []byte) ([]Segment, error) {
	raw, err := parseJSON3Bytes(b)
	if err != nil {
		return nil, err
	}
	return segmentsFromRaw(raw), nil
}
