package yt

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNoVideoID : aucun identifiant vidéo extractible de l'entrée utilisateur.
// Erreur terminale de validation, jamais re-tentée.
var ErrNoVideoID = errors.New("aucun identifiant vidéo reconnu")

// bareID : un identifiant Youtube nu, exactement 11 caractères de [a-zA-Z0-9_-].
var bareID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// urlPatterns : formes d'URL supportées, tentées dans l'ordre.
// Le premier groupe capturant est l'identifiant.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID résout l'entrée utilisateur (URL ou identifiant nu) en
// identifiant vidéo canonique. Un identifiant nu valide est retourné tel quel,
// avant toute tentative de parsing d'URL.
// Ne vérifie jamais que la vidéo existe réellement : c'est le rôle du fetch.
func ExtractVideoID(input string) (string, error) {
	if bareID.MatchString(input) {
		return input, nil
	}
	for _, p := range urlPatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w : %q", ErrNoVideoID, input)
}
