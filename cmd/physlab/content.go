package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/physlab/internal/content"
	"github.com/san-kum/physlab/internal/tui"
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func contentCommands() []*cobra.Command {
	contentCmd := &cobra.Command{
		Use:       "content [topics|videos|cards|questions]",
		Short:     "show the learning material",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"topics", "videos", "cards", "questions"},
		RunE:      showContent,
	}

	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "practice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library()
			if err != nil {
				return err
			}
			return tui.RunQuiz(lib.Questions.Values())
		},
	}

	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library()
			if err != nil {
				return err
			}
			return tui.RunCards(lib.Flashcards.Values())
		},
	}

	cmds := []*cobra.Command{contentCmd, quizCmd, cardsCmd}
	for _, c := range cmds {
		c.Flags().StringVar(&contentFile, "file", "", "content file (yaml), default is the built-in set")
	}
	return cmds
}

func library() (*content.Library, error) {
	if contentFile == "" {
		return content.Default(), nil
	}
	return content.Load(contentFile)
}

func showContent(cmd *cobra.Command, args []string) error {
	lib, err := library()
	if err != nil {
		return err
	}

	section := ""
	if len(args) > 0 {
		section = args[0]
	}
	show := func(name string) bool { return section == "" || section == name }

	if show("topics") {
		fmt.Println(heading.Render("topics"))
		for _, t := range lib.Topics {
			fmt.Printf("\n  %s %s\n", t.Title, muted.Render("("+t.Key+")"))
			for _, line := range strings.Split(strings.TrimRight(t.Body, "\n"), "\n") {
				fmt.Println("    " + line)
			}
		}
		fmt.Println()
	}
	if show("videos") {
		fmt.Println(heading.Render("videos"))
		for _, it := range lib.Videos.All() {
			v := it.Value
			fmt.Printf("  %s  %s\n    %s\n", v.Title, muted.Render(v.Channel), v.URL())
		}
		fmt.Println()
	}
	if show("cards") {
		fmt.Println(heading.Render("flashcards"))
		for _, it := range lib.Flashcards.All() {
			fmt.Printf("  %s\n    %s\n", it.Value.Term, muted.Render(it.Value.Definition))
		}
		fmt.Println()
	}
	if show("questions") {
		fmt.Println(heading.Render("questions"))
		for i, it := range lib.Questions.All() {
			q := it.Value
			fmt.Printf("  %d. %s\n", i+1, q.Text)
			for j, o := range q.Options {
				mark := " "
				if j == q.Correct {
					mark = "*"
				}
				fmt.Printf("     %s %c) %s\n", mark, 'a'+rune(j), o)
			}
		}
	}
	return nil
}
