package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	AudioDir    string
	StagingDir  string
	DBPath      string
	DictPath    string
	Owner       string
	AudioFormat string
	BatchFile   string
	SkipAudio   bool
	Archive     bool
	ListModels  bool
	JSONOutput  bool

	// Audio provider flags
	Provider          string
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
	ESpeakFallback    bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Owner:       "local",
		AudioFormat: "mp3",
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "alloy",
		OpenAISpeed: 0.95,
	}
}
