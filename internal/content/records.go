package content

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRecord = errors.New("content: invalid record")

type Video struct {
	YoutubeID string `yaml:"youtube_id"`
	Title     string `yaml:"title"`
	Channel   string `yaml:"channel"`
}

// URL is the watch or playlist address of the video.
func (v Video) URL() string {
	if rest, ok := strings.CutPrefix(v.YoutubeID, "videoseries?"); ok {
		return "https://www.youtube.com/playlist?" + rest
	}
	return "https://www.youtube.com/watch?v=" + v.YoutubeID
}

type Flashcard struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Term) == "" || strings.TrimSpace(f.Definition) == "" {
		return fmt.Errorf("%w: flashcard needs a term and a definition", ErrInvalidRecord)
	}
	return nil
}

// Question is a multiple choice question with exactly one correct option.
type Question struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is empty", ErrInvalidRecord)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: question needs at least two options", ErrInvalidRecord)
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidRecord, i+1)
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: correct option %d out of range", ErrInvalidRecord, q.Correct)
	}
	return nil
}
