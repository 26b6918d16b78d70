package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"zhwordvec/internal/domain"
)

// SourceConfig describes where one corpus comes from and what its local
// files are called under the data directory.
type SourceConfig struct {
	URL          string `yaml:"url"`
	GDriveFileID string `yaml:"gdrive_file_id"`
	Archive      string `yaml:"archive"`
	Extracted    string `yaml:"extracted"`
	Cleaned      string `yaml:"cleaned"`
}

// TrainingDefaults are the hyperparameter defaults shared by all drivers.
type TrainingDefaults struct {
	VectorSize int `yaml:"vector_size"`
	Window     int `yaml:"window"`
	MinCount   int `yaml:"min_count"`
	Workers    int `yaml:"workers"`
	Epochs     int `yaml:"epochs"`
}

// CleanConfig configures the cleaning stage.
type CleanConfig struct {
	Workers int `yaml:"workers" envconfig:"CLEAN_WORKERS"`
}

// Config is the root configuration: the data directory layout, the two
// built-in corpus sources, and stage defaults. It is passed explicitly to
// each stage; nothing here is package-global.
type Config struct {
	DataDir      string           `yaml:"data_dir" envconfig:"DATA_DIR"`
	StopwordsURL string           `yaml:"stopwords_url" envconfig:"STOPWORDS_URL"`
	Zhwiki       SourceConfig     `yaml:"zhwiki"`
	News2016zh   SourceConfig     `yaml:"news2016zh"`
	Training     TrainingDefaults `yaml:"training"`
	Clean        CleanConfig      `yaml:"clean"`
}

// Load reads a config from the given path, falling back to defaults when
// the file does not exist, then applies ZHWORDVEC_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	applyConfigDefaults(cfg)
	if err := envconfig.Process("zhwordvec", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathFromArgs scans raw CLI arguments for -config/--config before the
// flag set is built, so config values can serve as flag defaults.
func PathFromArgs(args []string) string {
	for i, arg := range args {
		for _, name := range []string{"-config", "--config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v
			}
		}
	}
	return "config.yaml"
}

// EnsureDirs creates the data, cleaned and model directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.CleanedDir(), c.ModelDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) CleanedDir() string    { return filepath.Join(c.DataDir, "cleaned") }
func (c *Config) ModelDir() string      { return filepath.Join(c.DataDir, "model") }
func (c *Config) LogPath() string       { return filepath.Join(c.DataDir, "log.txt") }
func (c *Config) StopwordsPath() string { return filepath.Join(c.DataDir, "stopwords.json") }

// ZhwikiSource resolves the zhwiki corpus into concrete artifact paths.
func (c *Config) ZhwikiSource() domain.Source {
	return domain.Source{
		Name:        "zhwiki",
		URL:         c.Zhwiki.URL,
		Archive:     domain.ArchiveBz2,
		ArchivePath: filepath.Join(c.DataDir, c.Zhwiki.Archive),
		CleanedPath: filepath.Join(c.CleanedDir(), c.Zhwiki.Cleaned),
	}
}

// News2016zhSource resolves the news2016zh corpus into concrete artifact paths.
func (c *Config) News2016zhSource() domain.Source {
	return domain.Source{
		Name:          "news2016zh",
		GDriveFileID:  c.News2016zh.GDriveFileID,
		Archive:       domain.ArchiveZip,
		ArchivePath:   filepath.Join(c.DataDir, c.News2016zh.Archive),
		ExtractedPath: filepath.Join(c.DataDir, c.News2016zh.Extracted),
		CleanedPath:   filepath.Join(c.CleanedDir(), c.News2016zh.Cleaned),
	}
}

func defaultConfig() *Config {
	return &Config{
		DataDir:      "data",
		StopwordsURL: "https://raw.githubusercontent.com/stopwords-iso/stopwords-zh/master/stopwords-zh.json",
		Zhwiki: SourceConfig{
			URL:     "https://dumps.wikimedia.org/zhwiki/latest/zhwiki-latest-pages-articles.xml.bz2",
			Archive: "zhwiki-latest-pages-articles.xml.bz2",
			Cleaned: "zhwiki.txt",
		},
		News2016zh: SourceConfig{
			GDriveFileID: "1TMKu1FpTr6kcjWXWlQHX7YJsMfhhcVKp",
			Archive:      "news2016zh.zip",
			Extracted:    "news2016zh_train.json",
			Cleaned:      "news2016zh.txt",
		},
		Training: TrainingDefaults{VectorSize: 100, Window: 5, MinCount: 5, Workers: 4, Epochs: 5},
		Clean:    CleanConfig{Workers: runtime.NumCPU()},
	}
}

func applyConfigDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.StopwordsURL == "" {
		cfg.StopwordsURL = def.StopwordsURL
	}
	if cfg.Zhwiki.URL == "" {
		cfg.Zhwiki.URL = def.Zhwiki.URL
	}
	if cfg.Zhwiki.Archive == "" {
		cfg.Zhwiki.Archive = def.Zhwiki.Archive
	}
	if cfg.Zhwiki.Cleaned == "" {
		cfg.Zhwiki.Cleaned = def.Zhwiki.Cleaned
	}
	if cfg.News2016zh.GDriveFileID == "" {
		cfg.News2016zh.GDriveFileID = def.News2016zh.GDriveFileID
	}
	if cfg.News2016zh.Archive == "" {
		cfg.News2016zh.Archive = def.News2016zh.Archive
	}
	if cfg.News2016zh.Extracted == "" {
		cfg.News2016zh.Extracted = def.News2016zh.Extracted
	}
	if cfg.News2016zh.Cleaned == "" {
		cfg.News2016zh.Cleaned = def.News2016zh.Cleaned
	}
	if cfg.Training.VectorSize == 0 {
		cfg.Training.VectorSize = def.Training.VectorSize
	}
	if cfg.Training.Window == 0 {
		cfg.Training.Window = def.Training.Window
	}
	if cfg.Training.MinCount == 0 {
		cfg.Training.MinCount = def.Training.MinCount
	}
	if cfg.Training.Workers == 0 {
		cfg.Training.Workers = def.Training.Workers
	}
	if cfg.Training.Epochs == 0 {
		cfg.Training.Epochs = def.Training.Epochs
	}
	if cfg.Clean.Workers <= 0 {
		cfg.Clean.Workers = def.Clean.Workers
	}
}
