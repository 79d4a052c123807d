package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := filepath.Base(file)
		if base == "readme.md" {
			continue
		}
		topic := strings.TrimSuffix(base, ".md")
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("failed to expand all topics: %v", err)
	}

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("failed to get topic %q: %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("expansion of %q is missing topic %q", "*", topic)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

// TestTopicStructure lints the markdown itself: each document opens with a
// single level-one heading, and every fenced code block carries a language
// tag so the terminal renderer can highlight it.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			h1s := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch node := n.(type) {
				case *ast.Heading:
					if node.Level == 1 {
						h1s++
					}
				case *ast.FencedCodeBlock:
					if len(node.Language(content)) == 0 {
						t.Error("fenced code block without a language tag")
					}
				}
				return ast.WalkContinue, nil
			})

			if h1s != 1 {
				t.Errorf("Got: %d level-one headings, want: 1", h1s)
			}
		})
	}
}
