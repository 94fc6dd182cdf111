package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	BasePriceCents         int64
	WeightCoefficient      string
	CollectorCardID        int64
	CollectorCardExpMonth  int64
	CollectorCardExpYear   int64
	CollectorCardCode      int64
	OrderRetentionHours    int64
	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	TariffCacheTTLSeconds  int64
}
