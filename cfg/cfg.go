package cfg

type (
	App struct {
		Name    string
		Version string
		LogFile string
	}

	Mysql struct {
		Host                  string
		Port                  string
		Username              string
		Password              string
		Database              string
		MaxIdleConnection     int
		MaxOpenConnection     int
		MaxLifeTimeConnection int
	}

	RiotApi struct {
		ApiKey          string
		MatchIdsApiUrl  string
		MatchApiUrl     string
		SummonerApiUrl  string
		MatchType       string
		HistoryDepth    int
		DefaultSummoner string
		RequestTimeout  int
		SecondRateLimit int
		MinuteRateLimit int
	}

	KafkaProducer struct {
		TopicBatch string
	}

	KafkaConsumer struct {
		GroupID string
	}

	Kafka struct {
		Brokers  []string
		Producer KafkaProducer
		Consumer KafkaConsumer
	}
)

type Config struct {
	App     App
	Mysql   Mysql
	RiotApi RiotApi
	Kafka   Kafka
}
