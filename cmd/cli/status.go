package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-verdict/internal/config"
	"github.com/sevigo/pr-verdict/internal/llm"
)

var outputJSON bool

type settingsView struct {
	Model          string  `json:"model"`
	ChatURL        string  `json:"chat_url"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens"`
	MaxAttempts    int     `json:"max_attempts"`
	GitHubAPIURL   string  `json:"github_api_url"`
	OpenAIKey      string  `json:"openai_api_key"`
	GitHubToken    string  `json:"github_reviewer_token"`
	GuidelinesFile string  `json:"guidelines_file"`
	Status         string  `json:"status"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the effective configuration with secrets masked",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		view := newSettingsView(cfg)
		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(view)
		}
		return writeSettings(os.Stdout, view)
	},
}

func newSettingsView(cfg *config.Config) settingsView {
	view := settingsView{
		Model:          cfg.LLM.Model,
		ChatURL:        cfg.LLM.BaseURL,
		Temperature:    cfg.LLM.Temperature,
		MaxTokens:      cfg.LLM.MaxTokens,
		MaxAttempts:    cfg.LLM.MaxAttempts,
		GitHubAPIURL:   cfg.GitHub.APIURL,
		OpenAIKey:      mask(cfg.LLM.APIKey),
		GitHubToken:    mask(cfg.GitHub.Token),
		GuidelinesFile: cfg.GuidelinesFile,
		Status:         "ok",
	}
	if err := cfg.Validate(); err != nil {
		view.Status = err.Error()
	} else if err := cfg.ValidateForPublishing(); err != nil {
		view.Status = "dry runs only: " + err.Error()
	}
	return view
}

func writeSettings(out io.Writer, view settingsView) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SETTING\tVALUE")
	fmt.Fprintf(w, "model\t%s\n", view.Model)
	fmt.Fprintf(w, "chat url\t%s\n", view.ChatURL)
	fmt.Fprintf(w, "temperature\t%g\n", view.Temperature)
	fmt.Fprintf(w, "max tokens\t%d\n", view.MaxTokens)
	fmt.Fprintf(w, "max attempts\t%d\n", view.MaxAttempts)
	fmt.Fprintf(w, "github api\t%s\n", view.GitHubAPIURL)
	fmt.Fprintf(w, "OPENAI_API_KEY\t%s\n", view.OpenAIKey)
	fmt.Fprintf(w, "GITHUB_REVIEWER_TOKEN\t%s\n", view.GitHubToken)
	fmt.Fprintf(w, "guidelines file\t%s\n", orDefault(view.GuidelinesFile, "(built-in)"))
	fmt.Fprintf(w, "status\t%s\n", view.Status)
	return w.Flush()
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Prints the system prompt sent with every review",
	RunE: func(_ *cobra.Command, _ []string) error {
		guidelines, err := config.LoadGuidelines(viper.GetString("GUIDELINES_FILE"))
		if err != nil {
			return err
		}
		pm, err := llm.NewPromptManager()
		if err != nil {
			return err
		}
		out, err := pm.Render(llm.ReviewPrompt, llm.ReviewPromptData{Guidelines: guidelines.Guidelines})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func mask(secret string) string {
	switch {
	case secret == "":
		return "(not set)"
	case len(secret) <= 8:
		return "****"
	default:
		return secret[:4] + "****"
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(promptCmd)
}
