package types

// TextureConfig holds settings for texture page compositing.
type TextureConfig struct {
	// SpecularLevel is the uniform alpha (0-255) baked into the
	// diffuse+specular composite. The new format reads specular
	// intensity from the alpha channel (default 102).
	SpecularLevel int `json:"specular_level" yaml:"specular_level"`

	// DetailWorldSize is the layer world size written for the detail
	// texture layer (default 12).
	DetailWorldSize int `json:"detail_world_size" yaml:"detail_world_size"`

	// MagickBinary overrides ImageMagick detection when non-empty
	// (e.g. "/opt/imagemagick/bin/magick").
	MagickBinary string `json:"magick_binary,omitempty" yaml:"magick_binary,omitempty"`
}

// ConvertConfig holds the settings for a single conversion run.
type ConvertConfig struct {
	// NameOverride replaces the terrain display name when non-empty.
	NameOverride string `json:"name_override,omitempty" yaml:"name_override,omitempty"`

	// GUID fixes the [General] GUID in the output. Empty means a random
	// one is generated.
	GUID string `json:"guid,omitempty" yaml:"guid,omitempty"`

	// CategoryID is the mod repository category written to [General]
	// (default 129, "Addon Terrains").
	CategoryID int `json:"category_id" yaml:"category_id"`

	// SandStormCubeMap is the fallback sky cube map for terrains without
	// a Caelum config (default "tracks/skyboxcol").
	SandStormCubeMap string `json:"sandstorm_cubemap" yaml:"sandstorm_cubemap"`

	// Force overwrites output files that already exist.
	Force bool `json:"force" yaml:"force"`

	// SkipTextures writes the page file without compositing the textures
	// it references.
	SkipTextures bool `json:"skip_textures" yaml:"skip_textures"`

	// Report controls whether the YAML conversion report is written next
	// to the outputs (default true).
	Report bool `json:"report" yaml:"report"`

	Texture TextureConfig `json:"texture" yaml:"texture"`
}
