package yt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/ytscript/pkg/model"
)

// Erreurs exportées du listing. Le caller (app) les mappe sur des messages
// utilisateur ; ici on ne fait que signaler.
var (
	// ErrNoTranscripts : la vidéo n'existe pas ou n'a aucune piste de transcript.
	ErrNoTranscripts = errors.New("aucun transcript disponible pour cette vidéo")
	// ErrLanguageNotFound : aucune piste dans les langues demandées.
	ErrLanguageNotFound = errors.New("aucun transcript dans les langues demandées")
)

// TranscriptHandle référence une piste de transcript disponible
// (une langue / un type de génération) avant que son texte ne soit récupéré.
type TranscriptHandle struct {
	Lang    string          // code langue ("en", "fr", ...)
	Name    string          // libellé humain de la piste
	Source  model.SubSource // manuel ou auto-généré (ASR)
	BaseURL string          // URL timedtext, sans le paramètre de format
}

func (h TranscriptHandle) String() string {
	return fmt.Sprintf("TranscriptHandle(lang=%s, source=%s)", h.Lang, h.Source)
}

// TranscriptList regroupe les pistes découvertes pour une vidéo, plus le
// contexte utile (titre). L'ordre de Tracks vient du service et n'est pas
// supposé stable d'un appel à l'autre.
type TranscriptList struct {
	VideoID string
	Title   string
	Tracks  []TranscriptHandle
}

// FindTranscript cherche une piste dans les langues demandées, dans l'ordre.
// Pour chaque langue, les pistes manuelles sont préférées aux pistes générées.
func (l *TranscriptList) FindTranscript(langs []string) (TranscriptHandle, error) {
	for _, lang := range langs {
		for _, src := range []model.SubSource{model.SubSourceManual, model.SubSourceAutomatic} {
			for _, tr := range l.Tracks {
				if tr.Source == src && tr.Lang == lang {
					return tr, nil
				}
			}
		}
	}
	return TranscriptHandle{}, fmt.Errorf("%w : %s", ErrLanguageNotFound, strings.Join(langs, ", "))
}

// FindGeneratedTranscript cherche une piste auto-générée (ASR) dans les
// langues demandées, dans l'ordre.
func (l *TranscriptList) FindGeneratedTranscript(langs []string) (TranscriptHandle, error) {
	for _, lang := range langs {
		for _, tr := range l.Tracks {
			if tr.Source == model.SubSourceAutomatic && tr.Lang == lang {
				return tr, nil
			}
		}
	}
	return TranscriptHandle{}, fmt.Errorf("%w (générées) : %s", ErrLanguageNotFound, strings.Join(langs, ", "))
}

// First retourne la première piste du listing, s'il y en a une.
// Dernier recours quand aucune recherche ciblée n'a abouti.
func (l *TranscriptList) First() (TranscriptHandle, bool) {
	if len(l.Tracks) == 0 {
		return TranscriptHandle{}, false
	}
	return l.Tracks[0], true
}
