package game

// computeCombatDamage deals all combat damage simultaneously when the
// combat damage step begins. Power, toughness and blocking assignments
// are read from a snapshot taken before any damage is marked, so the
// outcome never depends on assignment order.
func (e *Engine) computeCombatDamage(s *GameState) {
	attackers := e.declaredAttackers(s)
	if len(attackers) == 0 {
		return
	}

	defender := s.Opponent(s.Active)

	type hit struct {
		card   *CardInstance
		amount int
	}
	var creatureHits []hit
	playerDamage := 0
	lifelink := map[PlayerID]int{}

	blockersOf := e.blockerIndex(s, defender)
	power := e.snapshotPower(s)

	for _, aid := range attackers {
		attacker, _, ok := s.battlefieldCard(aid)
		if !ok {
			continue
		}
		at := e.template(attacker.Template)
		blockers := blockersOf[aid]

		if len(blockers) == 0 {
			playerDamage += power[aid]
			if at.HasKeyword(KeywordLifelink) {
				lifelink[s.Active] += power[aid]
			}
			continue
		}

		// The attacker assigns lethal damage down the blockers in the
		// order they block, by pre-damage toughness.
		remaining := power[aid]
		for i, bid := range blockers {
			blocker, _, ok := s.battlefieldCard(bid)
			if !ok {
				continue
			}
			assign := e.toughness(blocker) - blocker.Damage
			if assign > remaining || i == len(blockers)-1 {
				assign = remaining
			}
			if assign > 0 {
				creatureHits = append(creatureHits, hit{card: blocker, amount: assign})
				remaining -= assign
			}

			if power[bid] > 0 {
				creatureHits = append(creatureHits, hit{card: attacker, amount: power[bid]})
				if e.template(blocker.Template).HasKeyword(KeywordLifelink) {
					lifelink[defender] += power[bid]
				}
			}
		}
		if at.HasKeyword(KeywordLifelink) {
			lifelink[s.Active] += power[aid] - remaining
		}
	}

	for _, h := range creatureHits {
		h.card.Damage += h.amount
		s.logf(EventDamage, NoPlayer, "%s takes %d combat damage", e.template(h.card.Template).Name, h.amount)
	}
	if playerDamage > 0 {
		e.changeLife(s, defender, -playerDamage)
	}
	// Seat order, so the life-change log entries are deterministic.
	for i := range s.Players {
		p := s.Players[i].ID
		if gained := lifelink[p]; gained > 0 {
			e.changeLife(s, p, gained)
		}
	}
}

// blockerIndex maps each attacker id to its blockers in the defending
// player's battlefield order.
func (e *Engine) blockerIndex(s *GameState, defender PlayerID) map[string][]string {
	index := map[string][]string{}
	ps := s.Player(defender)
	for i := range ps.Battlefield {
		c := &ps.Battlefield[i]
		if c.BlockerOf != "" {
			index[c.BlockerOf] = append(index[c.BlockerOf], c.ID)
		}
	}
	return index
}

// snapshotPower records every battlefield creature's power before damage
// is applied.
func (e *Engine) snapshotPower(s *GameState) map[string]int {
	power := map[string]int{}
	for i := range s.Players {
		for j := range s.Players[i].Battlefield {
			c := &s.Players[i].Battlefield[j]
			if e.isCreature(c) {
				power[c.ID] = e.power(c)
			}
		}
	}
	return power
}

// clearCombat removes attacking and blocking assignments when combat
// ends. Marked damage stays until cleanup.
func (e *Engine) clearCombat(s *GameState) {
	for i := range s.Players {
		for j := range s.Players[i].Battlefield {
			c := &s.Players[i].Battlefield[j]
			c.Attacking = false
			c.BlockerOf = ""
		}
	}
	s.AttackersDeclared = false
	s.BlockersDeclared = false
}
