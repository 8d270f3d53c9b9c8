package scene

import "strings"

// TextureKind is a material texture slot.
type TextureKind int

// Texture slot kinds, in display order.
const (
	TextureNone TextureKind = iota
	TextureDiffuse
	TextureSpecular
	TextureAmbient
	TextureEmissive
	TextureHeight
	TextureNormals
	TextureShininess
	TextureOpacity
	TextureDisplacement
	TextureLightmap
	TextureReflection
	TextureUnknown

	TextureKindCount
)

var textureKindNames = [TextureKindCount]string{
	TextureNone:         "none",
	TextureDiffuse:      "diffuse",
	TextureSpecular:     "specular",
	TextureAmbient:      "ambient",
	TextureEmissive:     "emissive",
	TextureHeight:       "height",
	TextureNormals:      "normals",
	TextureShininess:    "shininess",
	TextureOpacity:      "opacity",
	TextureDisplacement: "displacement",
	TextureLightmap:     "lightmap",
	TextureReflection:   "reflection",
	TextureUnknown:      "unknown",
}

// String returns the lower-case slot name used in scene files.
func (k TextureKind) String() string {
	if k < 0 || k >= TextureKindCount {
		return "invalid"
	}
	return textureKindNames[k]
}

// Title returns the slot name as shown in the inspector.
func (k TextureKind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseTextureKind maps a slot name back to its kind.
func ParseTextureKind(name string) (TextureKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range textureKindNames {
		if n == name {
			return TextureKind(k), true
		}
	}
	return TextureUnknown, false
}
