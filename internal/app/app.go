package app

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/ytscript/internal/clipboard"
	"github.com/patrickprogramme/ytscript/internal/config"
	"github.com/patrickprogramme/ytscript/internal/ui"
	"github.com/patrickprogramme/ytscript/internal/yt"
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Video      string // argument positionnel : URL ou identifiant nu
	Output     string
	Timestamps bool
	Languages  []string
	Copy       bool
}

// App orchestre les différentes dépendances (UI, client transcript, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient yt.Interface
}

// New construit l'application en injectant les dépendances.
// Pour les tests, on passe des implémentations mock de ui.Interface et yt.Interface.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, ytClient yt.Interface) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		ytClient: ytClient,
	}
}

// Run exécute le flux principal : résolution de l'identifiant -> fetch ->
// rendu -> sortie. Aucune erreur n'est rattrapée ici : tout remonte à main,
// qui fait l'unique report utilisateur et fixe le code de sortie.
func (a *App) Run(ctx context.Context) error {
	// Récupération de l'entrée : priorité argument > clipboard/prompt
	input := a.flags.Video
	if input == "" && a.cfg.ClipboardLookup {
		u, err := a.ui.GetVideoInput(ctx)
		if err != nil {
			return fmt.Errorf("get video input: %w", err)
		}
		input = u
	}
	if input == "" {
		return fmt.Errorf("%w : aucune entrée fournie", yt.ErrNoVideoID)
	}

	// Résolution de l'identifiant (jamais re-tentée : erreur de validation)
	videoID, err := yt.ExtractVideoID(input)
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Téléchargement du transcript pour la vidéo : %s", videoID))

	// Préférences : flags par-dessus la config
	langs := a.flags.Languages
	if len(langs) == 0 {
		langs = a.cfg.Languages
	}
	withTimestamps := a.flags.Timestamps || a.cfg.Timestamps

	// Fetch (listing + sélection de piste + contenu)
	tr, err := FetchTranscript(ctx, a.ytClient, videoID, langs)
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript trouvé : %s (%s)", tr.Lang, tr.Source))

	// Rendu
	text := tr.Text(withTimestamps)

	// Copie presse-papier (optionnelle, non fatale)
	if a.flags.Copy || a.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible: %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Transcript copié dans le presse-papier.")
		}
	}

	// Sortie : fichier si -o, sinon stdout
	if a.flags.Output != "" {
		path, err := SaveTranscript(tr, text, a.cfg.OutputDir, a.flags.Output)
		if err != nil {
			return fmt.Errorf("échec de la sauvegarde du transcript: %w", err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Transcript sauvegardé : %s", path))
		return nil
	}

	a.ui.PrintInfo(ctx, "\n--- TRANSCRIPT ---\n")
	a.ui.PrintInfo(ctx, text)
	return nil
}
