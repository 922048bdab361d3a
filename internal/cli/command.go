package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordwand/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordwand [file]",
		Short: "Reading assistant for difficult documents",
		Long: `wordwand turns a document (image, PDF or plain text) into assisted
reading material: it extracts the text, flags words likely to be hard
for a struggling or dyslexic reader, breaks them into syllables and
generates spoken audio of the cleaned text.

Examples:
  wordwand homework.pdf             # Process a single document
  wordwand scan.png                 # OCR an image and read it aloud
  wordwand --batch documents.txt    # Process multiple documents from a list
  wordwand --list-models            # List usable OpenAI speech models`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultStateDir returns the base directory for audio, staging and the
// database when no explicit paths are given.
func DefaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "wordwand")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	stateDir := DefaultStateDir()

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordwand.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.AudioDir, "output", "o", filepath.Join(stateDir, "audio"), "Directory for generated audio artifacts")
	cmd.Flags().StringVar(&flags.StagingDir, "staging", filepath.Join(stateDir, "staging"), "Directory for staged uploads (cleaned after every run)")
	cmd.Flags().StringVar(&flags.DBPath, "db", filepath.Join(stateDir, "wordwand.db"), "SQLite database for processing records")
	cmd.Flags().StringVar(&flags.DictPath, "dict", "", "Pronunciation dictionary in CMUdict format (default: embedded)")
	cmd.Flags().StringVar(&flags.Owner, "owner", flags.Owner, "Owner identity recorded with each processed document")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (mp3 or wav)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process documents listed in file (one path per line)")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Record text analysis without generating audio")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the audio directory and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI speech models for the current API key")
	cmd.Flags().BoolVar(&flags.JSONOutput, "json", false, "Emit the analysis result as JSON on stdout")

	// Audio provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Speech provider: openai or espeak")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, coral, echo, fable, onyx, nova, sage, shimmer")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts (e.g. 'read slowly and clearly')")
	cmd.Flags().BoolVar(&flags.ESpeakFallback, "espeak-fallback", false, "Fall back to espeak-ng when the primary provider fails")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
	viper.BindPFlag("output.audio_dir", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.staging_dir", cmd.Flags().Lookup("staging"))
	viper.BindPFlag("store.db_path", cmd.Flags().Lookup("db"))
	viper.BindPFlag("lexicon.dict_path", cmd.Flags().Lookup("dict"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordwand" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordwand")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDWAND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("audio.openai_key")
}
