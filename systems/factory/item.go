package factory

import (
	"log"

	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem places a pickup centred on (x, y). Unknown types are skipped.
func CreateItem(ecs *ecs.ECS, itemType string, x, y float64) *donburi.Entry {
	itemCfg, ok := cfg.Items.Types[itemType]
	if !ok {
		log.Printf("Warning: unknown item type %q, skipping", itemType)
		return nil
	}

	item := archetypes.Item.Spawn(ecs)
	newBody(ecs, item, x, y, cfg.Items.Size, cfg.Items.Size, tags.ResolvItem)

	components.Item.SetValue(item, components.ItemData{
		Type:   itemType,
		Kind:   itemCfg.Kind,
		Amount: itemCfg.Amount,
	})

	return item
}
