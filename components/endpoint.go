package components

import "github.com/yohamta/donburi"

type EndpointData struct {
	Label   string
	Reached bool
}

var Endpoint = donburi.NewComponentType[EndpointData]()
