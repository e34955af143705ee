package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"anukriti-backend/internal/config"
	"anukriti-backend/internal/httpapi"
	"anukriti-backend/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Fatal("ping mongodb")
	}
	log.WithField("db", cfg.DBName).Info("connected to mongodb")

	stores := store.NewMongoStores(client.Database(cfg.DBName))
	server := httpapi.NewServer(cfg, stores, log)

	log.WithField("addr", cfg.ListenAddr).Info("listening")
	if err := server.Router().Run(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
