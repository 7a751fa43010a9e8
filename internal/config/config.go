package config

import (
	"errors"
	"fmt"
	"go/token"

	"fixturegen/fixture"
	"fixturegen/internal/gen"
	"fixturegen/primitive"
	"fixturegen/random"
	"fixturegen/utils"
)

const DefaultMaxDepth = 5

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration file.
type Config struct {
	// MaxDepth bounds recursion of generated values.
	MaxDepth int `yaml:"max_depth"`
	// Seed of the random source; 0 seeds from the current time.
	Seed uint64 `yaml:"seed,omitempty"`
	// Length is the size range of generated slices and containers.
	Length LengthRange `yaml:"length"`
	// StringLength is the exclusive upper bound of generated string length.
	StringLength int `yaml:"string_length"`
	// Packages are the package patterns scanned by scan and catalog.
	Packages StringOrArray `yaml:"packages,omitempty"`
	// Catalog configures the generated catalog file.
	Catalog CatalogConfig `yaml:"catalog"`
}

// LengthRange is an inclusive size range.
type LengthRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// CatalogConfig mirrors gen.GeneratorConfig.
type CatalogConfig struct {
	Package  string `yaml:"package"`
	Output   string `yaml:"output"`
	Filename string `yaml:"filename"`
	Comments *bool  `yaml:"comments,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_depth expected to be more than 0, but got %d",
			ErrInvalidConfig, c.MaxDepth))
	}

	if !utils.IsInRange(0, c.Length.Min, c.Length.Max) {
		errs = append(errs, fmt.Errorf("%w: length range [%d, %d] is invalid",
			ErrInvalidConfig, c.Length.Min, c.Length.Max))
	}

	if c.StringLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: string_length expected to be more than 0, but got %d",
			ErrInvalidConfig, c.StringLength))
	}

	if !token.IsIdentifier(c.Catalog.Package) {
		errs = append(errs, fmt.Errorf("%w: catalog package %q is not a valid identifier",
			ErrInvalidConfig, c.Catalog.Package))
	}

	if err := gen.ValidateFilename(c.Catalog.Filename); err != nil {
		errs = append(errs, fmt.Errorf("%w: catalog %w", ErrInvalidConfig, err))
	}

	for _, pattern := range c.Packages {
		if pattern == "" {
			errs = append(errs, fmt.Errorf("%w: empty package pattern", ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// NewGenerator builds a generator over the primitive leaf sources with the
// configured string length, seed and length range. extra options apply
// after the configured ones.
func (c *Config) NewGenerator(extra ...fixture.Option) (*fixture.Generator, error) {
	rng := c.random()

	sources, err := primitive.Sources(rng, c.StringLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	opts := []fixture.Option{
		fixture.WithRandom(rng),
		fixture.WithLengthRange(c.Length.Min, c.Length.Max),
	}

	return fixture.New(sources, c.MaxDepth, append(opts, extra...)...)
}

func (c *Config) random() random.Source {
	if c.Seed == 0 {
		return random.NewFromTime()
	}

	return random.New(c.Seed)
}

// GeneratorConfig returns the catalog settings as a gen configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	out := gen.DefaultGeneratorConfig()
	out.PackageName = c.Catalog.Package
	out.OutputDir = c.Catalog.Output
	out.Filename = c.Catalog.Filename

	if c.Catalog.Comments != nil {
		out.GenerateComments = *c.Catalog.Comments
	}

	return out
}
