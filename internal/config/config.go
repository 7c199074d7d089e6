package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Keymap struct {
	Edit map[string]string `toml:"edit"`
}

type EditorOptions struct {
	TabWidth int  `toml:"tab-width"`
	Debug    bool `toml:"debug"`
}

type Theme struct {
	Theme                string `toml:"theme"`
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	SyntaxIdentifier     string `toml:"syntax-identifier"`
	SyntaxKeyword        string `toml:"syntax-keyword"`
	SyntaxLiteral        string `toml:"syntax-literal"`
	SyntaxOperator       string `toml:"syntax-operator"`
	SyntaxPunctuator     string `toml:"syntax-punctuator"`
	SyntaxComment        string `toml:"syntax-comment"`
	SyntaxOther          string `toml:"syntax-other"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth: 4,
		},
		Theme: Theme{
			Foreground:           "white",
			Background:           "black",
			StatuslineForeground: "black",
			StatuslineBackground: "white",
			SyntaxIdentifier:     "white",
			SyntaxKeyword:        "#FFA759",
			SyntaxLiteral:        "#BAE67E",
			SyntaxOperator:       "#F29668",
			SyntaxPunctuator:     "#C0C0C0",
			SyntaxComment:        "#5C6773",
			SyntaxOther:          "white",
		},
		Keymap: Keymap{
			Edit: map[string]string{
				"ctrl+q":     "quit",
				"ctrl+s":     "save",
				"ctrl+n":     "move_down",
				"down":       "move_down",
				"ctrl+p":     "move_up",
				"up":         "move_up",
				"ctrl+f":     "move_right",
				"right":      "move_right",
				"ctrl+b":     "move_left",
				"left":       "move_left",
				"ctrl+a":     "row_start",
				"ctrl+e":     "row_end",
				"ctrl+t":     "file_start",
				"ctrl+z":     "file_end",
				"ctrl+g":     "cancel",
				"ctrl+d":     "delete_forward",
				"ctrl+r":     "delete_backward",
				"backspace":  "delete_backward",
				"ctrl+k":     "kill_to_row_end",
				"tab":        "insert_tab",
				"enter":      "confirm",
				"ctrl+space": "enter_command",
				"ctrl+j":     "enter_jump",
			},
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Editor.Debug {
		cfg.Editor.Debug = true
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap.Edit {
		cfg.Keymap.Edit[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&dst.Foreground, src.Foreground)
	set(&dst.Background, src.Background)
	set(&dst.StatuslineForeground, src.StatuslineForeground)
	set(&dst.StatuslineBackground, src.StatuslineBackground)
	set(&dst.SyntaxIdentifier, src.SyntaxIdentifier)
	set(&dst.SyntaxKeyword, src.SyntaxKeyword)
	set(&dst.SyntaxLiteral, src.SyntaxLiteral)
	set(&dst.SyntaxOperator, src.SyntaxOperator)
	set(&dst.SyntaxPunctuator, src.SyntaxPunctuator)
	set(&dst.SyntaxComment, src.SyntaxComment)
	set(&dst.SyntaxOther, src.SyntaxOther)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads a theme file written either flat or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var wrap struct {
		Theme *Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err == nil && wrap.Theme != nil {
		return *wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("LED_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "led"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "led"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
