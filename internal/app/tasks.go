package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/patrickprogramme/ytscript/internal/fsutil"
	"github.com/patrickprogramme/ytscript/internal/subtitles"
	"github.com/patrickprogramme/ytscript/internal/yt"
)

const filePerm = 0o644

// defaultLangs : langues tentées pour le lookup de piste auto-générée quand
// aucune préférence n'a été fournie (ou qu'elles sont toutes épuisées).
var defaultLangs = []string{"en"}

// FetchTranscript orchestre un cycle complet : un appel de listing, la
// sélection de piste selon les préférences de langue, puis un appel de fetch.
// Pas de retry, pas de résultat partiel : le premier échec remonte tel quel.
func FetchTranscript(ctx context.Context, client yt.Interface, videoID string, langs []string) (subtitles.Transcript, error) {
	var empty subtitles.Transcript

	list, err := client.ListTranscripts(ctx, videoID)
	if err != nil {
		return empty, fmt.Errorf("listing des transcripts : %w", err)
	}

	handle, err := selectTranscript(list, langs)
	if err != nil {
		return empty, err
	}

	segs, err := client.FetchTranscript(ctx, handle)
	if err != nil {
		return empty, err
	}

	return subtitles.NewTranscript(list.Title, handle.Lang, handle.Source, segs), nil
}

// selectTranscript applique la politique de fallback sur le listing :
//  1. préférences fournies : chaque langue tentée dans l'ordre, court-circuit
//     au premier succès ;
//  2. sans préférence (ou préférences épuisées) : piste auto-générée dans la
//     langue par défaut ;
//  3. dernier recours : première piste du listing, quel que soit son ordre.
//
// Liste ordonnée de lookups retournant (handle, error) — pas de branchement
// par exceptions.
func selectTranscript(list *yt.TranscriptList, langs []string) (yt.TranscriptHandle, error) {
	for _, lang := range langs {
		if h, err := list.FindTranscript([]string{lang}); err == nil {
			return h, nil
		}
	}
	if h, err := list.FindGeneratedTranscript(defaultLangs); err == nil {
		return h, nil
	}
	if h, ok := list.First(); ok {
		return h, nil
	}
	return yt.TranscriptHandle{}, fmt.Errorf("sélection de piste : %w", yt.ErrNoTranscripts)
}

// SaveTranscript écrit le texte rendu sur disque (écriture atomique).
// - outArg désigne un répertoire existant -> nom dérivé du titre dedans ;
// - outArg relatif -> résolu sous outputDir (la config) ;
// - outArg absolu -> utilisé tel quel.
// Retourne le chemin final du fichier.
func SaveTranscript(tr subtitles.Transcript, text string, outputDir, outArg string) (string, error) {
	path := outArg
	if !filepath.IsAbs(path) && outputDir != "" {
		path = filepath.Join(outputDir, path)
	}
	if fsutil.IsDir(path) {
		path = filepath.Join(path, tr.Filename())
	}
	if err := fsutil.WriteFileAtomic(path, []byte(text), filePerm); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", path, err)
	}
	return path, nil
}
