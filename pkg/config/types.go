package config

import "time"

type logCfg struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type entryCfg struct {
	Key   string        `toml:"key"`
	Value string        `toml:"value"`
	TTL   time.Duration `toml:"ttl"` // 0 means no expiry
}

type demoCfg struct {
	RunFor  time.Duration `toml:"runFor"`
	Entries []entryCfg    `toml:"entries"`
}

type SystemCfg struct {
	Log  logCfg  `toml:"log"`
	Demo demoCfg `toml:"demo"`
}
