package subtitles

import (
	"strings"

	"github.com/patrickprogramme/ytscript/pkg/model"
)

// Segment représente une unité de caption datée : offset de début (secondes),
// durée éventuelle et texte. Donnée immuable, produite par le service de
// transcript et consommée telle quelle au rendu.
type Segment struct {
	Start    float64 // début en secondes depuis le début de la vidéo
	Duration float64 // durée en secondes (0 si absente du payload)
	Text     string
}

// Transcript représente le résultat d'un fetch : la piste choisie + ses segments.
// L'ordre des segments (Start croissant) est garanti par le service, on ne
// re-trie jamais ici.
type Transcript struct {
	Title    string          // titre de la vidéo (hérité du listing)
	Lang     string          // code langue de la piste retenue
	Source   model.SubSource // manuel ou auto-généré
	Segments []Segment
}

// NewTranscript construit un Transcript à partir de données déjà prêtes.
// - pure function, pas d'I/O ni de parsing.
func NewTranscript(title, lang string, src model.SubSource, segs []Segment) Transcript {
	return Transcript{
		Title:    title,
		Lang:     lang,
		Source:   src,
		Segments: segs,
	}
}

// segmentsFromRaw transforme les events json3 en Segments, 1:1 et dans l'ordre
// d'arrivée. Pas de fusion ni de découpage de phrases : chaque event avec du
// texte devient exactement un segment.
func segmentsFromRaw(raw rawJSON3) []Segment {
	out := make([]Segment, 0, len(raw.Events))
	for _, ev := range raw.Events {
		// events sans segs = définitions de fenêtres, rien à afficher
		if len(ev.Segs) == 0 || ev.IsNewlineOnly() {
			continue
		}
		text := joinSegs(ev.Segs)
		if text == "" {
			continue
		}
		var seg Segment
		if ev.TStartMs != nil {
			seg.Start = float64(*ev.TStartMs) / 1000.0
		}
		if ev.DDurationMs != nil {
			seg.Duration = float64(*ev.DDurationMs) / 1000.0
		}
		seg.Text = text
		out = append(out, seg)
	}
	return out
}

// joinSegs concatène les segs d'un event en une seule ligne de texte.
// Les retours à la ligne internes deviennent des espaces simples.
func joinSegs(segs []rawSeg) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Utf8)
	}
	text := strings.ReplaceAll(b.String(), "\n", " ")
	text = strings.Join(strings.Fields(text), " ")
	return text
}
