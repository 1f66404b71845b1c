// Package main runs the fitplan MCP server over stdio, scoped to one user.
// Tools are read-only: schema, scheduled exercises, exercise types, templates, calories.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/config"
	"github.com/2beens/fitplan/internal/db"
	gymstatsmcp "github.com/2beens/fitplan/internal/gymstats/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	username := flag.String("username", "", "fitplan user whose data the tools expose")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	if *username == "" {
		log.Fatal("missing -username")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("FITPLAN_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	user, err := auth.NewUsersRepo(dbPool).GetByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("get user %s: %v", *username, err)
	}

	log.Debugf("serving fitplan MCP tools for user %d", user.ID)
	server := gymstatsmcp.NewServer(dbPool, user.ID)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
