package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/usecases/authenticating"
)

func main() {
	name := pflag.String("name", "", "nome do cliente da API")
	scopes := pflag.String("scopes", authenticating.ScopeForecastRun, "escopos separados por vírgula")
	ttl := pflag.Duration("ttl", 0, "validade do token (padrão 24h)")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*name, strings.Split(*scopes, ","), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao gerar token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
