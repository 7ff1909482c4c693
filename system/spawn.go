package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// levelEntities is a fully built level, ready to be swapped into a World.
type levelEntities struct {
	platforms []*obj.Platform
	moving    []*obj.MovingPlatform
	enemies   []*obj.Enemy
	coins     []*obj.Coin
	powerUps  []*obj.PowerUp
	ground    []common.Rect
	spawn     common.Vector2
}

func spawnLevel(l levels.Layout, cfg Config) (*levelEntities, error) {
	ents := &levelEntities{
		platforms: make([]*obj.Platform, 0, len(l.Platforms)),
		moving:    make([]*obj.MovingPlatform, 0, len(l.MovingPlatforms)),
		enemies:   make([]*obj.Enemy, 0, len(l.Enemies)),
		coins:     make([]*obj.Coin, 0, len(l.Coins)),
		powerUps:  make([]*obj.PowerUp, 0, len(l.PowerUps)),
		ground:    make([]common.Rect, 0, len(l.Platforms)),
		spawn:     common.Vec(l.Spawn.X, l.Spawn.Y),
	}

	for _, p := range l.Platforms {
		pl := obj.NewPlatform(p.X, p.Y, p.W, p.H)
		ents.platforms = append(ents.platforms, pl)
		ents.ground = append(ents.ground, pl.Bounds())
	}

	for _, m := range l.MovingPlatforms {
		kind, err := obj.ParseMovementKind(m.Kind)
		if err != nil {
			return nil, err
		}
		ents.moving = append(ents.moving, obj.NewMovingPlatform(m.X, m.Y, m.W, m.H, kind, m.Speed, m.Range))
	}

	for _, e := range l.Enemies {
		ents.enemies = append(ents.enemies, obj.NewEnemy(e.X, e.Y, cfg.Enemy))
	}

	for _, c := range l.Coins {
		coin := obj.NewCoin(c.X, c.Y)
		coin.Value = cfg.Rules.CoinScore
		ents.coins = append(ents.coins, coin)
	}

	for _, p := range l.PowerUps {
		kind, err := obj.ParsePowerUpKind(p.Kind)
		if err != nil {
			return nil, err
		}
		ents.powerUps = append(ents.powerUps, obj.NewPowerUp(p.X, p.Y, kind))
	}

	return ents, nil
}
