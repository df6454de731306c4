package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:    "riot-crawler",
			Version: "0.0.1",
			LogFile: "",
		},

		// Mysql
		Mysql: Mysql{
			Host:                  "127.0.0.1",
			Password:              "root",
			Username:              "root",
			Port:                  "3306",
			Database:              "riot_crawler",
			MaxIdleConnection:     10,
			MaxOpenConnection:     100,
			MaxLifeTimeConnection: 3600,
		},

		// RiotApi
		RiotApi: RiotApi{
			ApiKey:          "",
			MatchIdsApiUrl:  "https://europe.api.riotgames.com/lol/match/v5/matches/by-puuid/{puuid}/ids",
			MatchApiUrl:     "https://europe.api.riotgames.com/lol/match/v5/matches/{match_id}",
			SummonerApiUrl:  "https://euw1.api.riotgames.com/lol/summoner/v4/summoners/by-name/{name}",
			MatchType:       "ranked",
			HistoryDepth:    5,
			DefaultSummoner: "XkabutoX",
			RequestTimeout:  100,
			SecondRateLimit: 20,
			MinuteRateLimit: 100,
		},

		// Kafka
		Kafka: Kafka{
			Brokers: []string{"127.0.0.1:9092"},
			Producer: KafkaProducer{
				TopicBatch: "riot.crawler.batches",
			},
			Consumer: KafkaConsumer{
				GroupID: "riot-crawler-consumer",
			},
		},
	}, nil
}
