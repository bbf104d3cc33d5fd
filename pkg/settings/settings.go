package settings

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the runtime knobs of the reasoning core. The zero value is
// not usable; start from Default.
type Settings struct {
	// NumberOfPictures is how many independent random pictures every
	// configuration is realized in.
	NumberOfPictures int `yaml:"number_of_pictures"`
	// ReseedBudget bounds how many random instances are tried before a
	// configuration is declared inconstructible.
	ReseedBudget int `yaml:"reseed_budget"`
	// RandomSeed seeds the loose-object layout. Zero means seed from the
	// current time.
	RandomSeed int64 `yaml:"random_seed"`
}

func Default() Settings {
	return Settings{
		NumberOfPictures: 5,
		ReseedBudget:     50,
	}
}

// Seed returns the effective random seed.
func (s Settings) Seed() int64 {
	if s.RandomSeed != 0 {
		return s.RandomSeed
	}
	return time.Now().UnixNano()
}

func (s Settings) Validate() error {
	if s.NumberOfPictures < 2 {
		return fmt.Errorf("number_of_pictures must be at least 2, got %d: %w",
			s.NumberOfPictures, ErrInvalidSettings)
	}
	if s.ReseedBudget < 1 {
		return fmt.Errorf("reseed_budget must be positive, got %d: %w",
			s.ReseedBudget, ErrInvalidSettings)
	}
	return nil
}

// Parse reads yaml settings on top of the defaults. The core does no file
// I/O; callers hand in the bytes.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
