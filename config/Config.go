package config

import "github.com/sukh8282/exconsole/persistence/redis"

type StorageType string

const STORAGE_TYPE_REDIS StorageType = "redis"
const STORAGE_TYPE_INMEM StorageType = "memory"

type Config struct {
	HttpPort     int
	StorageType  StorageType
	RedisConfig  redis.Config
	RemoteConfig RemoteConfig
	SettingsFile string
	HistoryLimit int
	Debug        bool
}

type RemoteConfig struct {
	Endpoint        string
	Token           string
	TimeoutSeconds  int
	ProbeTTLSeconds int
	ConnectRetries  int
}
