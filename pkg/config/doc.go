// Package config loads typed configuration structs from environment
// variables.
//
// Fields are declared with `env` struct tags (caarlos0/env syntax). A .env
// file in the working directory is loaded once per process before the first
// parse, which keeps local development and container deployments on the same
// code path:
//
//	type ServerConfig struct {
//	    Addr      string `env:"SERVER_ADDR" envDefault:":8080"`
//	    JWTSecret string `env:"JWT_SECRET,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
