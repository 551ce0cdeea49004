package yt

import (
	"context"

	"github.com/patrickprogramme/ytscript/internal/subtitles"
)

// Interface est l'abstraction du service de transcript utilisée par
// l'application. Elle facilite le test en autorisant une implémentation
// factice dans les tests.
//
// Contrat : un appel de listing, puis un appel de fetch sur la piste retenue.
// Aucun retry ici ni chez l'implémentation — chaque échec remonte tel quel.
type Interface interface {
	// ListTranscripts découvre les pistes disponibles pour une vidéo.
	ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error)
	// FetchTranscript récupère la séquence complète de segments d'une piste.
	FetchTranscript(ctx context.Context, h TranscriptHandle) ([]subtitles.Segment, error)
}
