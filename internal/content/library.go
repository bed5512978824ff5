package content

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seed []byte

// Topic is a short theory note linked to a simulation.
type Topic struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Library groups the three record collections plus theory notes.
type Library struct {
	Topics     []Topic
	Videos     *Collection[Video]
	Flashcards *Collection[Flashcard]
	Questions  *Collection[Question]
}

type libraryFile struct {
	Topics     []Topic     `yaml:"topics"`
	Videos     []Video     `yaml:"videos"`
	Flashcards []Flashcard `yaml:"flashcards"`
	Questions  []Question  `yaml:"questions"`
}

// Default returns a fresh library built from the embedded seed content.
func Default() *Library {
	lib, err := Parse(seed)
	if err != nil {
		panic(fmt.Sprintf("content: bad embedded seed: %v", err))
	}
	return lib
}

// Load reads a library from a YAML file laid out like the embedded seed.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	for i, f := range file.Flashcards {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("flashcard %d: %w", i+1, err)
		}
	}
	for i, q := range file.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &Library{
		Topics:     file.Topics,
		Videos:     NewCollection(file.Videos...),
		Flashcards: NewCollection(file.Flashcards...),
		Questions:  NewCollection(file.Questions...),
	}, nil
}

// Topic looks up a theory note by key.
func (l *Library) Topic(key string) (Topic, bool) {
	for _, t := range l.Topics {
		if t.Key == key {
			return t, true
		}
	}
	return Topic{}, false
}
