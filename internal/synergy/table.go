package synergy

// The curated synergy knowledge base. Scores and descriptions are
// hand-tuned against live gameplay; this table is the single source of
// truth for every scoring layer.

type pairEntry struct {
	a, b  string
	score int
	desc  string
}

type soloEntry struct {
	name  string
	score int
}

var pairTable = []pairEntry{
	{"Glacial Core", "Essence of Clemency", 25,
		"Healing-to-damage conversion loop: Clemency heals from damage, Glacial Core converts healing to cold damage"},
	{"Divine Faith", "Essence of Domination", 22,
		"Dual infinite scaling: Faith scales with kills, Domination scales with crits"},
	{"Essence of Paranoia", "Essence of Momentum", 20,
		"Auto-cast on damage + cooldown reduction per attack = near-permanent uptime"},
	{"Essence of Twilight", "Essence of the Abyss", 20,
		"Dark stack synergy: Abyss converts to dark, Twilight consumes stacks for massive damage"},
	{"Eternal Flame", "Eye of the Sun", 20,
		"Fire synergy: Eternal Flame applies burn stacks, Eye of the Sun enhances burning enemies"},
	{"Essence of Domination", "Essence of Fangs", 18,
		"Crit scaling: Fangs guarantees crits, Domination scales crit damage infinitely"},
	{"Essence of Insight", "Essence of Flow", 18,
		"Light damage cooldown loop: Both reduce cooldowns when dealing light damage"},
	{"Perfection", "Divine Faith", 18,
		"Universal scaling: Perfection provides base stats, Faith scales everything with kills"},
	{"Essence of Fever", "Essence of Sulfur", 15,
		"Fire DoT amplification: Sulfur converts to fire and boosts DoT, Fever creates scaling explosions"},
	{"Essence of Momentum", "Essence of Efficiency", 15,
		"Cooldown stacking: Attack-based reduction + flat haste for minimal downtime"},
	{"Eternal Flame", "Essence of Fever", 22,
		"Chain explosion loop: Eternal Flame stacks burns, Fever detonates fire enemies with scaling AoE, explosions re-trigger burns"},
	{"Eternal Flame", "Essence of Sulfur", 20,
		"Full fire conversion: Sulfur converts all damage to Fire + 50% DoT boost, every hit triggers Eternal Flame burn stacking"},
	{"Embertail", "Eye of the Sun", 20,
		"Fire spread + mass detonation: Embertail ricochets fire to all enemies, Eye of the Sun detonates all burning targets for 360% damage"},
	{"Embertail", "Eternal Flame", 20,
		"Ricochet burn spread: Embertail ricochets fire hits, each triggering Eternal Flame burn stacks across the battlefield"},
	{"Eternal Flame", "Essence of Charcoal", 18,
		"Guaranteed burn bonus: Eternal Flame ensures targets are burning, Charcoal deals 100% Fire damage to burning targets (vs 60%)"},
	{"Embertail", "Essence of Fever", 15,
		"Fire spread + chain explosion: Embertail spreads fire everywhere, Fever detonates all burning enemies in chain explosions"},
	{"Essence of Twilight", "Essence of Obsidian", 16,
		"Dark burst combo: Obsidian empowers next attack for 250% Dark damage + 1s CDR, Twilight stacks and consumes darkness"},
	{"Essence of Twilight", "Essence of Dusk", 16,
		"Dark stack amplification: Dusk fires 2 dark shards per attack, rapidly building stacks for Twilight's burst consumption"},
	{"Essence of Twilight", "Essence of the Starry Sky", 16,
		"Dark attack speed loop: Twilight converts attacks to Dark, Starry Sky grants up to 40% attack speed on Dark damage"},
	{"Essence of Crimson", "Essence of Fangs", 18,
		"Aligned 4th-attack procs: Both trigger every 4th attack, Fangs guarantees crits that enlarge Crimson explosions"},
	{"Essence of Crimson", "Essence of Domination", 18,
		"Crit scaling + AoE: Domination's +20% Crit enlarges Crimson explosions, Crimson's procs feed Domination's infinite crit stacking"},
	{"Essence of Domination", "Essence of Composure", 15,
		"Crit chance stacking: Composure gives +30% Crit on cast + Domination's +20% = 50%+ Crit feeding infinite scaling"},
	{"Essence of Domination", "Essence of Umbra", 15,
		"Crit-scaling damage: Umbra scales by 42% of Crit Chance, Domination provides +20% Crit and infinite Crit Damage"},
	{"Perfection", "Essence of Fangs", 14,
		"Stat synergy: Perfection's +6% Crit + 10% AS + 10 Haste enhances Fangs' crit proc rate and cooldown reduction"},
	{"Glacial Core", "Essence of Frost", 18,
		"Infinite HP scaling: Frost permanently gains Max HP, increasing its cold damage, which feeds Glacial Core's healing-to-damage loop"},
	{"Glacial Core", "Essence of Freezing", 14,
		"Cold feedback loop: Freezing's cold damage triggers Glacial Core's boosted 7.2% healing, converting back to cold shards"},
	{"Glacial Core", "Essence of Bleakness", 14,
		"Cold damage amplification: Glacial Core's ice shards apply Cold status, Bleakness deals 50% more damage to Cold-affected enemies"},
	{"Essence of Thunder", "Essence of Flow", 16,
		"Light damage CDR: Thunder's Light damage per stack triggers Flow's 6% cooldown reduction per Light hit"},
	{"Essence of Thunder", "Essence of Insight", 16,
		"Light burst + haste: Thunder consumes stacks for Light damage, Insight adds 200% bonus Light damage + 20 Memory Haste"},
	{"Pure White", "Essence of Shock", 16,
		"Light stacking: Pure White fires more projectiles per Light stack, Shock bounces Lightning adding Light stacks to multiple enemies"},
	{"Pure White", "Essence of Flow", 15,
		"Light projectile CDR: Pure White's multiple Light projectiles each trigger Flow's 6% cooldown reduction"},
	{"Essence of Paranoia", "Essence of Vengeance", 18,
		"Damage-reactive retaliation: Both trigger on taking damage, Vengeance adds +34% damage buff amplifying Paranoia's auto-casts"},
	{"Essence of Paranoia", "Essence of Panic", 15,
		"Damage-reactive haste: Both trigger on hit, Panic grants 30 Haste + 20% movement speed stacking with Paranoia's auto-cast"},
	{"Essence of Direness", "Essence of Overload", 16,
		"Low-HP symbiosis: Overload sacrifices 20% HP to gain 45% damage, pushing into Direness' below-30% threshold for 55% CDR"},
	{"Essence of the Giant", "Essence of Frost", 15,
		"HP scaling synergy: Giant gives +260 HP and 1% damage per 50 HP, Frost permanently gains HP making Giant scale higher"},
	{"Essence of Finality", "Essence of Inversion", 13,
		"Extended cooldown payoff: Inversion's +15% cooldown means more Finality stacks (5% damage each) plus Inversion's own +20% damage"},
}

// Essences that carry standalone value without a partner.
var soloTable = []soloEntry{
	{"Essence of Paranoia", 15},
	{"Essence of Pain", 12},
	{"Perfection", 12},
}

// Category groupings over the synergy_type tags carried by essences.
var categoryOrder = []string{
	"damage_conversion", "healing", "cooldown", "critical", "scaling",
	"automation", "mobility", "summon", "projectile",
}

var categoryTypes = map[string][]string{
	"damage_conversion": {"fire_damage", "cold_damage", "light_damage", "dark_damage", "damage_conversion"},
	"healing":           {"healing", "defense"},
	"cooldown":          {"cooldown_reduction"},
	"critical":          {"critical_strike"},
	"scaling":           {"scaling"},
	"automation":        {"automation"},
	"mobility":          {"mobility", "attack_speed"},
	"summon":            {"summon"},
	"projectile":        {"projectile"},
}
