package config

import (
	"flag"

	"zhwordvec/internal/domain"
)

// BindTrainingFlags registers the training options shared by every driver
// on the given flag set, using the config's training section for defaults.
// inputDefault and prefixDefault are driver-specific.
func BindTrainingFlags(fs *flag.FlagSet, d TrainingDefaults, inputDefault, prefixDefault string) *domain.TrainingParams {
	p := &domain.TrainingParams{}
	fs.StringVar(&p.InputFile, "input_file", inputDefault,
		"Input file to train the model. Format: each row is an article or a sentence, with words separated by whitespace.")
	fs.StringVar(&p.NamePrefix, "name_prefix", prefixDefault,
		"Name prefix for the model. The actual name consists of the prefix and the hyperparameters.")
	fs.IntVar(&p.VectorSize, "vector_size", d.VectorSize, "Dimensionality of the word vectors.")
	fs.IntVar(&p.Window, "window", d.Window, "Maximum distance between the current and predicted word within a sentence.")
	fs.IntVar(&p.MinCount, "min_count", d.MinCount, "Ignores all words with total frequency lower than this.")
	fs.IntVar(&p.Workers, "workers", d.Workers, "Use these many worker threads to train the model.")
	fs.IntVar(&p.Epochs, "epochs", d.Epochs, "Number of iterations (epochs) over the corpus.")
	fs.BoolVar(&p.Overwrite, "overwrite", false, "Overwrite an existing model artifact with the same derived name.")
	return p
}
