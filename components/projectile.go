package components

import "github.com/yohamta/donburi"

// Owner is the side that fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

type ProjectileData struct {
	DX, DY float64
	Owner  Owner
	Dead   bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
