package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"lavadb/config"
	"lavadb/executor"
	"lavadb/logging"
	"lavadb/parser"
	"lavadb/planner"
)

func main() {
	configPath := flag.String("config", "lavadb.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		return
	}

	logger, closeLogger := logging.Setup(cfg.Logging)
	defer closeLogger()

	rl, err := readline.New("lavadb > ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF ends the session
			break
		}
		if line == "exit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rl.SaveHistory(line)

		if err := execute(line, cfg, logger); err != nil {
			fmt.Println(err)
		}
	}

	fmt.Println("Bye!")
}

func execute(sqlString string, cfg *config.Config, logger *slog.Logger) error {
	queryID := uuid.NewString()
	start := time.Now()

	stmt, err := parser.NewSimpleParser().Parse(sqlString)
	if err != nil {
		return err
	}

	pl, err := planner.NewSimplePlanner().MakePlan(stmt)
	if err != nil {
		return err
	}

	op, err := executor.Build(pl, cfg.Data.Dir)
	if err != nil {
		return err
	}

	rs, err := executor.Collect(op)
	if err != nil {
		logger.Error("query failed",
			"query_id", queryID,
			"error", err,
		)
		return err
	}

	if len(rs.Header) > 0 {
		fmt.Println(strings.Join(rs.Header, "\t"))
	}
	for _, row := range rs.Rows {
		fmt.Println(row)
	}

	logger.Info("query executed",
		"query_id", queryID,
		"rows", len(rs.Rows),
		"elapsed", time.Since(start),
	)
	return nil
}
