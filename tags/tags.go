package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Pickup   = donburi.NewTag().SetName("Pickup")
	Endpoint = donburi.NewTag().SetName("Endpoint")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvDecorative = "decorative"
	ResolvPlayer     = "Player"
	ResolvPickup     = "pickup"
	ResolvEndpoint   = "endpoint"
)
