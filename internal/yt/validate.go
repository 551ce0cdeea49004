package yt

import "regexp"

var ytRegex = regexp.MustCompile(`(?i)https?://(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)`)

// IsYouTubeURL indique si s ressemble à une URL Youtube. Utilisé par l'UI
// pour accepter le contenu du presse-papier sans prompt (un identifiant nu
// dans le presse-papier serait trop ambigu).
func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(s)
}
