package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	require.Equal(t, 5, s.NumberOfPictures)
	require.Equal(t, 50, s.ReseedBudget)
	require.NotZero(t, s.Seed())
}

func TestSeedIsStableWhenSet(t *testing.T) {
	s := Default()
	s.RandomSeed = 42
	require.Equal(t, int64(42), s.Seed())
	require.Equal(t, int64(42), s.Seed())
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte("number_of_pictures: 3\nrandom_seed: 7\n"))
	require.NoError(t, err)
	require.Equal(t, 3, s.NumberOfPictures)
	require.Equal(t, 50, s.ReseedBudget)
	require.Equal(t, int64(7), s.RandomSeed)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("number_of_pictures: 1\n"))
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = Parse([]byte("reseed_budget: 0\n"))
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = Parse([]byte("number_of_pictures: [\n"))
	require.Error(t, err)
}
