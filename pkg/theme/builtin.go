package theme

import "gitlab.com/tinyland/lab/charlotte/pkg/color"

// thBuiltins returns every built-in theme.
func thBuiltins() []Theme {
	return []Theme{
		thCharlotteDark(),
		thCharlotteLight(),
		thDracula(),
		thBootstrap(),
		thColorblind(),
	}
}

// thPalette builds a Theme from name/hex pairs.
func thPalette(name string, pairs ...string) Theme {
	colors := make(map[string]color.Color, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		colors[pairs[i]] = color.MustParse(pairs[i+1])
	}
	return Theme{Name: name, Colors: colors}
}

// thCharlotteDark is the default dark palette.
func thCharlotteDark() Theme {
	return thPalette("charlotte-dark",
		"red", "#FF4050",
		"orange", "#F28144",
		"yellow", "#FFD24A",
		"green", "#A4CC35",
		"cyan", "#26C99E",
		"blue", "#66BFFF",
		"purple", "#CC78FA",
		"pink", "#F553BF",

		"shade0", "#282629",
		"shade1", "#474247",
		"shade2", "#656066",
		"shade3", "#847E85",
		"shade4", "#A29DA3",
		"shade5", "#C1BCC2",
		"shade6", "#E0DCE0",
		"shade7", "#FFFCFF",
	)
}

// thCharlotteLight mirrors the dark shade ramp with deeper accents.
func thCharlotteLight() Theme {
	return thPalette("charlotte-light",
		"red", "#F03E4D",
		"orange", "#F37735",
		"yellow", "#EEBA21",
		"green", "#97BD2D",
		"cyan", "#1FC598",
		"blue", "#53A6E1",
		"purple", "#BF65F0",
		"pink", "#EE4EB8",

		"shade0", "#FFFCFF",
		"shade1", "#E0DCE0",
		"shade2", "#C1BCC2",
		"shade3", "#A29DA3",
		"shade4", "#847E85",
		"shade5", "#656066",
		"shade6", "#474247",
		"shade7", "#282629",
	)
}

func thDracula() Theme {
	return thPalette("dracula",
		"blue", "#6272a4",
		"cyan", "#8be9fd",
		"green", "#50fa7b",
		"orange", "#ffb86c",
		"pink", "#ff79c6",
		"purple", "#bd93f9",
		"red", "#ff5555",
		"yellow", "#f1fa8c",

		"shade0", "#282a36",
		"shade1", "#44475a",
		"shade2", "#656066",
		"shade3", "#847E85",
		"shade4", "#A29DA3",
		"shade5", "#C1BCC2",
		"shade6", "#E0DCE0",
		"shade7", "#f8f8f2",
	)
}

// thBootstrap carries the Bootstrap 5 semantic colours.
func thBootstrap() Theme {
	return thPalette("bootstrap",
		"primary", "#0D6EFD",
		"secondary", "#6C757D",
		"success", "#198754",
		"info", "#0DCAF0",
		"warning", "#FFC107",
		"danger", "#DC3545",
		"light", "#F8F9FA",
		"dark", "#212529",
	)
}

// thColorblind is the Okabe-Ito palette.
func thColorblind() Theme {
	return thPalette("colorblind",
		"black", "#000000",
		"grey", "#999999",
		"orange", "#E69F00",
		"skyblue", "#56B4E9",
		"green", "#009E73",
		"yellow", "#F0E442",
		"blue", "#0072B2",
		"red", "#D55E00",
		"purple", "#CC79A7",
	)
}
