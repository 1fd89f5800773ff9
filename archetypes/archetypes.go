package archetypes

import (
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Session,
		components.Input,
		components.Clock,
		components.Camera,
		components.Level,
		components.Health,
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
