package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	DataDir   string
	OutputDir string

	// Pipeline flags
	InputDir string
	Workers  int
	MaxDim   int
	DSRate   int

	// Fetch flags
	MaxFetchBytes int64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DataDir:       "data",
		OutputDir:     "outputs",
		Workers:       4,
		MaxDim:        1024,
		DSRate:        1000,
		MaxFetchBytes: 50 * 1024 * 1024,
	}
}
