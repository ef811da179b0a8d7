package config

// Manifestfile represents the structure of a bundle manifest file.
type Manifestfile struct {
	Version    string      `yaml:"version"`
	Descriptor string      `yaml:"descriptor"`
	Source     string      `yaml:"source"`
	Output     string      `yaml:"output"`
	Banner     *BannerDTO  `yaml:"banner"`
	Bundles    []BundleDTO `yaml:"bundles"`
}

// BannerDTO represents the banner block of the manifest.
type BannerDTO struct {
	Project   string `yaml:"project"`
	Author    string `yaml:"author"`
	License   string `yaml:"license"`
	URL       string `yaml:"url"`
	FirstYear int    `yaml:"firstYear"`
	Retain    bool   `yaml:"retain"`
}

// BundleDTO represents one bundle definition in the manifest.
type BundleDTO struct {
	Name      string   `yaml:"name"`
	Output    string   `yaml:"output"`
	Minified  string   `yaml:"minified"`
	Fragments []string `yaml:"fragments"`
}
