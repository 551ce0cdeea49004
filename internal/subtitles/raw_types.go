package subtitles

import "strings"

// rawJSON3 représente la structure "brute" telle qu'on la récupère depuis le
// endpoint timedtext de Youtube (format json3). On ne mappe que les champs
// utiles au transcript.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement les champs de fenêtrage (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// IsNewlineOnly indique si l'event ne contient que des retours à la ligne.
// Youtube insère ce genre d'events entre deux lignes de captions automatiques ;
// ils ne portent aucun texte et ne doivent pas produire de segment.
func (e rawEvent) IsNewlineOnly() bool {
	if len(e.Segs) == 0 {
		return false
	}
	for _, s := range e.Segs {
		t := strings.TrimSpace(s.Utf8)
		if t == "" || t == "\n" || t == "\\n" {
			continue
		}
		// au moins un seg porte du contenu réel
		return false
	}
	return true
}
