package model

import "fmt"

// Seconds est un alias explicite pour représenter un offset en secondes.
type Seconds int64

// SecondsOf convertit un offset flottant (venant du service de transcript)
// en Seconds par troncature — jamais d'arrondi : 65.999 -> 65.
// Les offsets négatifs ne font pas partie du contrat (start >= 0 toujours).
func SecondsOf(f float64) Seconds {
	return Seconds(int64(f))
}

// Timestamp formate Seconds en "MM:SS" (toujours 2 chiffres par composant),
// ou "HH:MM:SS" dès qu'il y a des heures.
// Exemple : 65 -> "01:05", 3661 -> "01:01:01".
func (s Seconds) Timestamp() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

func (s Seconds) Milliseconds() int64 {
	return int64(s) * 1000
}

// SubSource représente la provenance d'une piste de transcript.
// automatic = généré automatiquement par Youtube (ASR)
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}
