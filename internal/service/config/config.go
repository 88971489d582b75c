package config

type Config struct {
	NumberOfCollections int    `env:"NUMBER_OF_COLLECTIONS"`
	Timezone            string `env:"TIMEZONE"`
}
