package clean

// Step is one transformation over the token stream of a single record.
// A freshly extracted record enters the pipeline as a single-element
// slice holding the whole text; segmentation fans it out into words.
type Step interface {
	Name() string
	Apply(tokens []string) ([]string, error)
}
