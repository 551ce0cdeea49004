package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/ytscript/internal/clipboard"
	"github.com/patrickprogramme/ytscript/internal/yt"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// GetVideoInput récupère l'entrée vidéo quand aucun argument n'a été passé.
// 1) presse-papier : accepté uniquement si c'est une URL Youtube (un identifiant
// nu de 11 caractères dans le presse-papier serait trop ambigu) ;
// 2) prompt : accepte URL ou identifiant nu, re-demande tant que c'est invalide.
func (t *terminalUI) GetVideoInput(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if yt.IsYouTubeURL(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		fmt.Print("Entrez l'URL ou l'identifiant d'une vidéo Youtube: ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		input = strings.TrimSpace(input)
		if _, err := yt.ExtractVideoID(input); err == nil {
			return input, nil
		}
		fmt.Println("❌ Entrée invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
