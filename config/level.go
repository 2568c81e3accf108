package config

// DecorativeKinds are platform kinds drawn as scenery. They never collide.
var DecorativeKinds = map[string]bool{
	"road-kanban": true,
	"house-1":     true,
}

// IsDecorative reports whether a platform kind is scenery only.
func IsDecorative(kind string) bool {
	return DecorativeKinds[kind]
}
