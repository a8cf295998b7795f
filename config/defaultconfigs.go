package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Colors: Colors{
			BoardColor:        94,
			LineColor:         255,
			XColor:            231,
			OColor:            223,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 136,
		},
		Symbols: Symbols{
			X:     'X',
			O:     'O',
			Empty: ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: "info",
		},
	}
}
