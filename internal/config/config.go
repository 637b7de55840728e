package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	Database    Database
	Store       Store `envPrefix:"STORE_"`

	MercadoPago MercadoPago `envPrefix:"MERCADOPAGO_"`
	Auth        Auth        `envPrefix:"AUTH_"`
}

type Database struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"mysql"` // mysql | sqlite
	URL    string `env:"DATABASE_URL"`
}

type MercadoPago struct {
	BaseApiURL  string `env:"BASE_API_URL" envDefault:"https://api.mercadopago.com"`
	AccessToken string `env:"ACCESS_TOKEN"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// Store holds storefront-facing settings: where the buyer is sent back after
// checkout and the flat shipping fee quoted by /api/shipping.
type Store struct {
	FrontendURL      string `env:"FRONTEND_URL"`
	ShippingFee      int64  `env:"SHIPPING_FEE" envDefault:"2000"`
	ShippingCurrency string `env:"SHIPPING_CURRENCY" envDefault:"ARS"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
