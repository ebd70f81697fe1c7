package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/budget-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/budget-forecaster/infrastructure/gcp"
	"github.com/vfg2006/budget-forecaster/infrastructure/ledger"
	"github.com/vfg2006/budget-forecaster/infrastructure/repository"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

// Carrega um livro-razão CSV (arquivo ou gs://) na tabela ledger_transactions
func main() {
	input := pflag.String("input", "", "livro-razão CSV: arquivo ou gs://bucket/objeto")
	dsn := pflag.String("dsn", os.Getenv("DATABASE_URL"), "DSN do Postgres de destino")
	pflag.Parse()

	if *input == "" || *dsn == "" {
		fmt.Fprintln(os.Stderr, "uso: import --input <ledger.csv> --dsn postgres://...")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	gcsOpts, err := gcp.ClientOptions(cfg.Google, storage.ScopeReadOnly)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar credenciais Google")
	}
	reader := ledger.NewRouter(ledger.WithGCS(ledger.NewGCSReader(gcsOpts...)))

	records, err := reader.ReadLedger(ctx, *input)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o livro-razão")
	}

	if err := postgres.RunMigrations(*dsn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	conn, err := postgres.NewConnection(ctx, *dsn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return repository.NewTransactionRepository(tx).SaveTransactions(ctx, records)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar lançamentos")
	}

	logrus.WithField("records", len(records)).Info("Livro-razão importado")
}
