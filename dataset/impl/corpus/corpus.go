package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyCorpus is returned when the words file holds no usable token.
var ErrEmptyCorpus = errors.New("no words loaded")

// Load reads one token per line, trimming surrounding whitespace and skipping blank lines.
// Tokens are NFC-normalized so that visually identical words measure and render the same.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open words file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, norm.NFC.String(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words file %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrEmptyCorpus, path)
	}
	return words, nil
}

// Shuffle permutes words in place. The same seed always yields the same order.
func Shuffle(words []string, seed uint64) {
	random := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	random.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// NewSeed draws a seed for runs that did not configure one.
func NewSeed() uint64 {
	for {
		if seed := rand.Uint64(); seed != 0 {
			return seed
		}
	}
}
