package components

import "github.com/yohamta/donburi"

// LivesData counts remaining ships. The run is over once Lives drops below 1.
type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()
