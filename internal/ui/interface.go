package ui

import "context"

type Interface interface {
	// GetVideoInput doit renvoyer une URL ou un identifiant vidéo utilisable.
	// Implémentation terminale : priorité clipboard -> prompt
	GetVideoInput(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
