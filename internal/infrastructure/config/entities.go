package config

// PlayerConfig tunes the shark.
type PlayerConfig struct {
	Width       float64      `yaml:"width"`
	AspectRatio Ratio        `yaml:"aspectRatio"`
	Hitbox      HitboxConfig `yaml:"hitbox"`

	// SpeedX and SpeedY are px per 60 Hz tick
	SpeedX float64 `yaml:"speedX"`
	SpeedY float64 `yaml:"speedY"`

	HurtCooldownMs   float64 `yaml:"hurtCooldownMs"`
	AttackCooldownMs float64 `yaml:"attackCooldownMs"`
	MaxCoins         int     `yaml:"maxCoins"`
	MaxPoisonBottles int     `yaml:"maxPoisonBottles"`
	FinSlapReach     float64 `yaml:"finSlapReach"`

	Sprites PlayerSpritesConfig `yaml:"sprites"`
}

type HitboxConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// PlayerSpritesConfig keys hurt/dead sets by hurt variant
// ("electric-shock", "poisoned") and attack sets by attack variant.
type PlayerSpritesConfig struct {
	Swim     FrameSetConfig            `yaml:"swim"`
	Idle     FrameSetConfig            `yaml:"idle"`
	IdleLong FrameSetConfig            `yaml:"idleLong"`
	Hurt     map[string]FrameSetConfig `yaml:"hurt"`
	Dead     map[string]FrameSetConfig `yaml:"dead"`
	Attack   map[string]FrameSetConfig `yaml:"attack"`

	Bubble       string `yaml:"bubble"`
	PoisonBubble string `yaml:"poisonBubble"`
}

// EnemyConfig is one roster entry. Missing coordinates spawn at random
// inside the level's spawn area.
type EnemyConfig struct {
	Type        string             `yaml:"type"`
	Stats       string             `yaml:"stats"`
	X           *float64           `yaml:"x"`
	Y           *float64           `yaml:"y"`
	Width       float64            `yaml:"width"`
	AspectRatio Ratio              `yaml:"aspectRatio"`
	Sprites     EnemySpritesConfig `yaml:"sprites"`
}

type EnemySpritesConfig struct {
	Swim FrameSetConfig `yaml:"swim"`
	Hurt FrameSetConfig `yaml:"hurt"`
	Dead FrameSetConfig `yaml:"dead"`
}

type BossConfig struct {
	X           float64           `yaml:"x"`
	Y           float64           `yaml:"y"`
	Width       float64           `yaml:"width"`
	AspectRatio Ratio             `yaml:"aspectRatio"`
	Sprites     BossSpritesConfig `yaml:"sprites"`
}

type BossSpritesConfig struct {
	Introduce FrameSetConfig `yaml:"introduce"`
	Floating  FrameSetConfig `yaml:"floating"`
	Attack    FrameSetConfig `yaml:"attack"`
	Hurt      FrameSetConfig `yaml:"hurt"`
	Dead      FrameSetConfig `yaml:"dead"`
}

// PickupConfig places one collectible type.
type PickupConfig struct {
	Width     float64          `yaml:"width"`
	Value     int              `yaml:"value"`
	Frames    FrameSetConfig   `yaml:"frames"`
	Positions []PositionConfig `yaml:"positions"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
