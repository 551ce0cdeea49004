package subtitles

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/ytscript/internal/fsutil"
	"github.com/patrickprogramme/ytscript/pkg/model"
)

// Text rend le transcript en texte brut : une ligne par segment, dans l'ordre
// d'entrée, sans newline final. Avec withTimestamps, chaque ligne est préfixée
// "[MM:SS] " (ou "[HH:MM:SS] " au-delà d'une heure). Le texte du segment est
// écrit tel quel — pas de trim, pas d'échappement.
// Transcript vide -> chaîne vide.
func (t Transcript) Text(withTimestamps bool) string {
	if len(t.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range t.Segments {
		if i > 0 {
			b.WriteString("\n")
		}
		if withTimestamps {
			b.WriteString("[")
			b.WriteString(model.SecondsOf(s.Start).Timestamp())
			b.WriteString("] ")
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Filename compose le nom de fichier pour ce transcript à partir du titre.
// Exemple : "The simplest tech stack (en).txt"
func (t Transcript) Filename() string {
	base := fsutil.SanitizeFilename(strings.TrimSpace(t.Title))
	if strings.TrimSpace(base) == "" {
		// fallback de sécurité si sanitize rend la chaîne vide
		base = "transcript"
	}
	lang := strings.TrimSpace(t.Lang)
	if lang == "" {
		lang = "und"
	}
	return fmt.Sprintf("%s (%s).txt", base, lang)
}
