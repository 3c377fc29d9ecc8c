package llm

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// PromptKey names an embedded prompt; prompts/<key>.prompt holds its template.
type PromptKey string

const ReviewPrompt PromptKey = "review"

// ReviewPromptData is rendered into the review system prompt.
type ReviewPromptData struct {
	Guidelines []string
}

// PromptManager holds the parsed prompt templates.
type PromptManager struct {
	prompts map[PromptKey]*template.Template
}

func NewPromptManager() (*PromptManager, error) {
	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	pm := &PromptManager{prompts: make(map[PromptKey]*template.Template, len(files))}
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		key := PromptKey(strings.TrimSuffix(name, path.Ext(name)))
		content, err := promptFiles.ReadFile("prompts/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", name, err)
		}

		tmpl, err := template.New(string(key)).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", name, err)
		}
		pm.prompts[key] = tmpl
	}

	return pm, nil
}

// Render executes the template registered under key.
func (pm *PromptManager) Render(key PromptKey, data any) (string, error) {
	tmpl, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompt found for key '%s'", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", key, err)
	}
	return buf.String(), nil
}
