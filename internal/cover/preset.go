package cover

import "fmt"

// Preset is a fixed visual rendition of a book image.
type Preset struct {
	// Name identifies the preset in URLs and metrics.
	Name string
	// Placeholder is appended to a moderation placeholder prefix.
	Placeholder string
	// Transform is the CDN transformation segment, reproduced verbatim.
	Transform string
}

var (
	// BackgroundSmall is the quick-link box background used in sidebars.
	BackgroundSmall = Preset{
		Name:        "background-small",
		Placeholder: "background-small.jpg",
		Transform:   "c_fill,e_vibrance:100,g_north,h_100,w_300",
	}

	// BackgroundLarge is the blurred splash image on the book details page.
	BackgroundLarge = Preset{
		Name:        "background-large",
		Placeholder: "background-large.jpg",
		Transform:   ",c_fill,e_blur:800,g_north,h_350,w_1500/e_vibrance:100",
	}

	// Cover is the scaled cover on the book details page.
	Cover = Preset{
		Name:        "cover",
		Placeholder: "cover.jpg",
		Transform:   "c_pad,e_vibrance:100,h_355,w_275",
	}

	// CoverPreview is the cover shown in search results and browsing pages.
	CoverPreview = Preset{
		Name:        "preview",
		Placeholder: "preview.jpg",
		Transform:   "c_pad,e_vibrance:100,h_300,w_200",
	}
)

// Presets lists every preset.
var Presets = []Preset{BackgroundSmall, BackgroundLarge, Cover, CoverPreview}

// PresetByName looks up a preset by its name.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
