package config

type HTTP struct {
	Port    uint32 `env:"PORT" envDefault:"3000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
}
