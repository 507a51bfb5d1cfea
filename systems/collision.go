package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts resolves the player's overlaps with enemies, hazards and
// items. resolv gives the broad phase; each candidate is confirmed with a
// rectangle test before anything happens.
func UpdateContacts(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(player).Object

	enemies, hazards, items := overlappingEntries(ecs.World, playerObj)

	for _, enemy := range enemies {
		if !enemy.Valid() {
			continue
		}
		BehaviorFor(enemy).OnPlayerContact(ecs, enemy, player)
	}

	for _, hazard := range hazards {
		if !hazard.Valid() {
			continue
		}
		h := components.Hazard.Get(hazard)
		source := components.Object.Get(hazard).Center()
		DamagePlayer(ecs.World, h.Damage, source, cfg.Combat.HazardInvulnerability, h.KnockbackSpeed)
	}

	for _, item := range items {
		if !item.Valid() || !player.Valid() {
			continue
		}
		tryPickup(ecs.World, player, item)
	}
}

func overlappingEntries(w donburi.World, playerObj *resolv.Object) (enemies, hazards, items []*donburi.Entry) {
	check := playerObj.Check(0, 0, tags.ResolvEnemy, tags.ResolvHazard, tags.ResolvItem)
	if check == nil {
		return nil, nil, nil
	}

	for _, obj := range check.Objects {
		if !overlapsAt(playerObj, 0, 0, obj) {
			continue
		}
		id, ok := obj.Data.(donburi.Entity)
		if !ok || !w.Valid(id) {
			continue
		}
		entry := w.Entry(id)
		switch {
		case entry.HasComponent(tags.Enemy):
			enemies = append(enemies, entry)
		case entry.HasComponent(tags.Hazard):
			hazards = append(hazards, entry)
		case entry.HasComponent(tags.Item):
			items = append(items, entry)
		}
	}
	return enemies, hazards, items
}

// tryPickup consumes an item whose centre is close enough to the player's.
// The effect and the removal happen together; a consumed item is gone
// before anything else can see it. A player killed earlier in the same
// contact pass picks nothing up.
func tryPickup(w donburi.World, player, item *donburi.Entry) bool {
	if IsGameOver(w) {
		return false
	}
	playerCenter := components.Object.Get(player).Center()
	itemCenter := components.Object.Get(item).Center()
	if playerCenter.Distance(itemCenter) > cfg.Items.PickupRadius {
		return false
	}

	data := *components.Item.Get(item)
	destroyEntity(w, item)

	switch data.Kind {
	case cfg.ItemHeal:
		components.Health.Get(player).Heal(data.Amount)
	case cfg.ItemAttackBoost:
		components.Player.Get(player).Atk += data.Amount
	}

	ReportStats(w)
	return true
}
