package config

// Config represents the pview configuration document.
type Config struct {
	PaletteDir  string `yaml:"palette_dir" validate:"required"`
	Extension   string `yaml:"extension" validate:"required,startswith=."`
	Theme       string `yaml:"theme" validate:"oneof=light dark"`
	Strict      bool   `yaml:"strict"`
	OnLoadError string `yaml:"on_load_error" validate:"oneof=fatal keep"`
	Watch       bool   `yaml:"watch"`
	Repo        Repo   `yaml:"repo"`
	TUI         TUI    `yaml:"tui"`
	Image       Image  `yaml:"image"`
	Log         Log    `yaml:"log"`
}

// Repo points at a git repository of palette files.
type Repo struct {
	URL    string `yaml:"url" validate:"omitempty,repo_url"`
	Branch string `yaml:"branch,omitempty"`
	Depth  int    `yaml:"depth,omitempty" validate:"min=0"`
	// Dest defaults to palette_dir.
	Dest string `yaml:"dest,omitempty"`
}

// TUI geometry is in terminal units: one row tall, two columns wide.
type TUI struct {
	Margin int `yaml:"margin" validate:"min=0,max=20"`
	Gutter int `yaml:"gutter" validate:"min=0,max=10"`
}

// Image geometry is in pixels.
type Image struct {
	Width        int    `yaml:"width" validate:"min=1,max=16384"`
	Height       int    `yaml:"height" validate:"min=1,max=16384"`
	Margin       int    `yaml:"margin" validate:"min=0"`
	BottomMargin int    `yaml:"bottom_margin" validate:"min=0"`
	Gutter       int    `yaml:"gutter" validate:"min=0"`
	LabelSize    int    `yaml:"label_size" validate:"min=1,max=512"`
	FooterSize   int    `yaml:"footer_size" validate:"min=1,max=512"`
	Font         string `yaml:"font,omitempty"`
}

// Log configures the zerolog output.
type Log struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		PaletteDir:  "./palettes",
		Extension:   ".hex",
		Theme:       "light",
		OnLoadError: "fatal",
		TUI:         TUI{Margin: 0, Gutter: 0},
		Image: Image{
			Width:        800,
			Height:       600,
			Margin:       10,
			BottomMargin: 40,
			Gutter:       10,
			LabelSize:    12,
			FooterSize:   20,
		},
		Log: Log{Level: "info"},
	}
}

// RepoDest is where `sync` places the palette repository.
func (c Config) RepoDest() string {
	if c.Repo.Dest != "" {
		return c.Repo.Dest
	}
	return c.PaletteDir
}
