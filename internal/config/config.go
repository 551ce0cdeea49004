package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/ytscript/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Sortie
	OutputDir  string `yaml:"output_dir"`
	Timestamps bool   `yaml:"timestamps"`

	// Langues préférées, dans l'ordre de priorité (ex: ["fr", "en"]).
	// Vide = politique par défaut du service (piste auto-générée).
	Languages []string `yaml:"languages"`

	// Presse-papier
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	ClipboardLookup bool `yaml:"clipboard_lookup"`

	// Réseau
	Request struct {
		TimeoutSeconds int   `yaml:"timeout_seconds"`
		MaxBytes       int64 `yaml:"max_bytes"`
	} `yaml:"request"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// configuration par défaut (aussi utilisée pour créer le fichier au premier lancement)
func defaultConfig() *Config {
	c := &Config{}

	// Sortie
	c.OutputDir = "."
	c.Timestamps = false

	// Langues : vide = laisser le service choisir
	c.Languages = nil

	// Presse-papier
	c.CopyToClipboard = false
	c.ClipboardLookup = true

	// Réseau
	c.Request.TimeoutSeconds = 15
	c.Request.MaxBytes = 10_000_000

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config ; si le fichier n'existe pas, on le crée à partir des
// valeurs par défaut (écriture atomique). Les champs présents dans le YAML
// écrasent les defaults, les champs absents les conservent.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "ytscript.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	return cfg, nil
}

// createDefaultConfig sérialise les defaults et les écrit atomiquement.
func createDefaultConfig(dstPath string) error {
	b, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("sérialisation de la configuration par défaut impossible : %w", err)
	}
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}
	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Langues : trim + drop des entrées vides, casse normalisée
	langs := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			langs = append(langs, l)
		}
	}
	c.Languages = langs

	// Bornes réseau : zéro ou négatif -> defaults
	if c.Request.TimeoutSeconds <= 0 {
		c.Request.TimeoutSeconds = 15
	}
	if c.Request.MaxBytes <= 0 {
		c.Request.MaxBytes = 10_000_000
	}
}

// RequestTimeout retourne le timeout réseau sous forme de time.Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Request.TimeoutSeconds) * time.Second
}

// FilePath retourne le chemin du fichier de configuration effectivement chargé.
func (c *Config) FilePath() string {
	return c.configFilePath
}
