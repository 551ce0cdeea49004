package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/patrickprogramme/ytscript/internal/app"
	"github.com/patrickprogramme/ytscript/internal/config"
	"github.com/patrickprogramme/ytscript/internal/ui"
	"github.com/patrickprogramme/ytscript/internal/yt"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "ytscript.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "ytscript.yaml")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := yt.NewClient(cfg.RequestTimeout(), cfg.Request.MaxBytes)
	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, client)
	if err := a.Run(ctx); err != nil {
		report(err)
	}
}

// report fait l'unique sortie utilisateur en cas d'échec et fixe le code de
// sortie. Les fonctions du coeur ne terminent jamais le process elles-mêmes.
func report(err error) {
	var urlErr *url.Error
	switch {
	case errors.Is(err, yt.ErrNoVideoID):
		fmt.Fprintf(os.Stderr, "Erreur : URL ou identifiant vidéo invalide — %v\n", err)
	case errors.Is(err, yt.ErrNoTranscripts), errors.Is(err, yt.ErrLanguageNotFound):
		fmt.Fprintf(os.Stderr, "Erreur : transcript introuvable — %v\n", err)
	case errors.As(err, &urlErr):
		fmt.Fprintf(os.Stderr, "Erreur : service de transcript injoignable — %v\n", err)
		fmt.Fprintln(os.Stderr, "Vérifiez votre connexion réseau (ou votre proxy) et réessayez.")
	default:
		fmt.Fprintf(os.Stderr, "Erreur : %v\n", err)
	}
	os.Exit(1)
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	var langsRaw string

	flag.StringVar(&f.ConfigPath, "config", "ytscript.yaml", "chemin du fichier de configuration")
	flag.StringVar(&f.Output, "o", "", "fichier de sortie (défaut: stdout); un répertoire => nom dérivé du titre")
	flag.StringVar(&f.Output, "output", "", "alias de -o")
	flag.BoolVar(&f.Timestamps, "t", false, "inclure les timestamps dans le transcript")
	flag.BoolVar(&f.Timestamps, "timestamps", false, "alias de -t")
	flag.StringVar(&langsRaw, "l", "", "codes langue préférés, séparés par des virgules (ex: fr,en)")
	flag.StringVar(&langsRaw, "languages", "", "alias de -l")
	flag.BoolVar(&f.Copy, "copy", false, "copier le transcript rendu dans le presse-papier")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] <URL ou identifiant vidéo>\n\n", os.Args[0])
		fmt.Fprintf(out, "Exemples:\n")
		fmt.Fprintf(out, "  %s \"https://www.youtube.com/watch?v=dQw4w9WgXcQ\"\n", os.Args[0])
		fmt.Fprintf(out, "  %s -o transcript.txt dQw4w9WgXcQ\n", os.Args[0])
		fmt.Fprintf(out, "  %s -t -l fr,en \"https://youtu.be/dQw4w9WgXcQ\"\n\n", os.Args[0])
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	f.Video = strings.TrimSpace(flag.Arg(0))
	f.Languages = splitLangs(langsRaw)
	return f
}

// splitLangs découpe la liste de langues "fr,en" en conservant l'ordre,
// qui définit la priorité du fallback.
func splitLangs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
